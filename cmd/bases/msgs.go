package bases

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Inventario, ventas y usuarios de una tienda de ropa"
	MsgUsersShort        = "Gestionar usuarios"
	MsgUsersListShort    = "Mostrar todos los usuarios"
	MsgUsersFindShort    = "Buscar usuario por nombre"
	MsgUsersAddShort     = "Agregar usuario"
	MsgUsersDeleteShort  = "Eliminar usuario"
	MsgProductsShort     = "Gestionar ropa"
	MsgProductsListShort = "Mostrar todo el inventario"
	MsgProductsFindShort = "Buscar prendas por categoría"
	MsgProductsAddShort  = "Agregar prenda"
	MsgProductsDelShort  = "Eliminar prenda"
	MsgSalesShort        = "Gestionar ventas"
	MsgSalesListShort    = "Mostrar todas las ventas"
	MsgSalesShowShort    = "Mostrar una venta y sus detalles"
	MsgSalesAddShort     = "Agregar venta"
	MsgSalesUpdateShort  = "Actualizar usuario y total de una venta"
	MsgSalesDeleteShort  = "Eliminar venta y sus detalles"
	MsgStatsShort        = "Mostrar estadísticas"
	MsgSchemaShort       = "Gestionar el esquema relacional"
	MsgSchemaInitShort   = "Crear tablas y secuencias que falten"
	MsgConfigShort       = "Gestionar la configuración"
	MsgConfigInitShort   = "Escribir el fichero de configuración por defecto"
	MsgConfigShowShort   = "Mostrar la configuración efectiva"
	MsgGuideShort        = "Mostrar temas de ayuda"
	MsgVersionShort      = "Mostrar la versión"
	MsgCompletionShort   = "Generar el script de autocompletado"

	// Status messages
	MsgUserAdded       = "Usuario agregado con éxito!"
	MsgUserDeleted     = "Usuario eliminado con éxito!"
	MsgNoUsers         = "No hay usuarios registrados."
	MsgProductAdded    = "Producto agregado con éxito! (ID %d)"
	MsgProductDeleted  = "Producto eliminado con éxito!"
	MsgSaleAdded       = "Venta agregada con éxito! (ID %d)"
	MsgSaleUpdated     = "Venta actualizada con éxito!"
	MsgSaleDeleted     = "Venta eliminada con éxito!"
	MsgSaleCreated     = "Venta creada con ID: %d"
	MsgSaleLine        = "Producto '%s' agregado - Subtotal: $%s"
	MsgSaleSkipped     = "Producto %d no encontrado"
	MsgSaleCompleted   = "Venta completada - Total: $%s"
	MsgSaleNoLines     = "(Sin detalles de productos)"
	MsgSchemaCreated   = "Esquema listo: %d objetos creados"
	MsgConfigWritten   = "Configuración escrita en %s"
	MsgGuideTopics     = "Temas disponibles: %s"
	MsgVersionFormat   = "bases version %s\n  commit: %s\n  built:  %s\n"
	MsgSalesAddArgsErr = "indique TOTAL o al menos un --item, no ambos"

	// Flag descriptions
	MsgFlagVerbose  = "Aumentar el detalle del log (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Fichero de configuración (por defecto $XDG_CONFIG_HOME/bases/config.toml)"
	MsgFlagFormat   = "Formato de salida: box, json, yaml o xml"
	MsgFlagNoColor  = "Desactivar colores"
	MsgFlagFit      = "Ajustar el ancho de los registros a su contenido"
	MsgFlagForce    = "Sobrescribir un fichero existente"
	MsgFlagItem     = "Prenda y cantidad como ID:CANTIDAD (repetible)"
	MsgFlagCategory = "Categoría (camisa/pantalón/vestido/otros)"
	MsgFlagColor    = "Color"
	MsgFlagSize     = "Talla"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/sales-add-long.txt
	msgSalesAddLongRaw string
	MsgSalesAddLong    = strings.TrimSpace(msgSalesAddLongRaw)

	//go:embed msgs/sales-add-example.txt
	msgSalesAddExampleRaw string
	MsgSalesAddExample    = strings.TrimRight(msgSalesAddExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)
)
