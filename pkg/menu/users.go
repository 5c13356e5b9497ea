package menu

import "context"

func (m *Menu) usersScreen() screen {
	return screen{
		title: "=== GESTIÓN DE USUARIOS ===",
		entries: []entry{
			{"1", "Agregar usuario", m.addUser},
			{"2", "Mostrar todos los usuarios", m.listUsers},
			{"3", "Buscar usuario por nombre", m.findUser},
			{"4", "Eliminar usuario", m.deleteUser},
		},
		exitKeys:  []string{"0"},
		exitLabel: "Volver al menú principal",
		exitMsg:   "Volviendo al menú principal...",
	}
}

func (m *Menu) addUser(ctx context.Context) error {
	m.con.Println()
	nombre, err := m.in.Line("Ingrese nombre del usuario: ")
	if err != nil {
		return err
	}
	email, err := m.in.Line("Ingrese email: ")
	if err != nil {
		return err
	}
	edad, err := m.in.Int("Ingrese edad: ")
	if err != nil {
		return err
	}

	if _, err := m.svc.AddUser(ctx, nombre, email, int(edad)); err != nil {
		return err
	}
	m.con.Success("Usuario agregado con éxito!")
	return nil
}

func (m *Menu) listUsers(ctx context.Context) error {
	recs, err := m.svc.ListUsers(ctx)
	if err != nil {
		return err
	}
	m.con.Title("=== LISTA DE USUARIOS ===")
	if len(recs) == 0 {
		m.con.Info("No hay usuarios registrados.")
		return nil
	}
	return m.out.PrintRecords(recs)
}

func (m *Menu) findUser(ctx context.Context) error {
	m.con.Println()
	nombre, err := m.in.Line("Ingrese nombre a buscar: ")
	if err != nil {
		return err
	}
	rec, err := m.svc.FindUser(ctx, nombre)
	if err != nil {
		return err
	}
	return m.out.PrintRecord(rec)
}

func (m *Menu) deleteUser(ctx context.Context) error {
	m.con.Println()
	nombre, err := m.in.Line("Ingrese nombre del usuario a eliminar: ")
	if err != nil {
		return err
	}
	if err := m.svc.DeleteUser(ctx, nombre); err != nil {
		return err
	}
	m.con.Success("Usuario eliminado con éxito!")
	return nil
}
