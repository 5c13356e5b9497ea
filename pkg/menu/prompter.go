package menu

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/style"
)

// Prompter reads answers line by line, writing each prompt to the console
// first.
type Prompter struct {
	r   *bufio.Reader
	con *style.Console
}

// NewPrompter creates a prompter reading from r.
func NewPrompter(r io.Reader, con *style.Console) *Prompter {
	return &Prompter{r: bufio.NewReader(r), con: con}
}

// Line prompts and returns the trimmed answer. A final line without a
// newline is still returned; INPUT_CLOSED once nothing is left to read.
func (p *Prompter) Line(prompt string) (string, error) {
	p.con.Prompt(prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, errors.ErrInputClosed, "no se pudo leer la entrada")
		}
		if line == "" {
			// leave the prompt on its own line
			p.con.Println()
			return "", errors.New(errors.ErrInputClosed, "fin de la entrada")
		}
	}
	return strings.TrimSpace(line), nil
}

// Int prompts until the answer is a whole number.
func (p *Prompter) Int(prompt string) (int64, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.ParseInt(s, 10, 64)
		if perr == nil {
			return n, nil
		}
		p.con.Warning("Ingrese un número entero válido")
	}
}

// Decimal prompts until the answer is a decimal number. A comma is accepted
// as the decimal separator.
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, perr := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
		if perr == nil {
			return d, nil
		}
		p.con.Warning("Ingrese un número válido")
	}
}

// Confirm asks a yes/no question. Only s, si, sí, y and yes count as yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	s, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
