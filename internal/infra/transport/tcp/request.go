package tcp

import (
	"strconv"
	"strings"

	"github.com/ormanli/atm-aspects/internal/app/atm"
)

type command int

const (
	withdraw command = iota
	deposit
	balance
	send
)

// request represents a parsed command line.
type request struct {
	command command
	amount  int
	message string
}

// parseRequest parses one line of the form COMMAND[|ARGUMENT] and returns a request object along with any error encountered during parsing.
func parseRequest(s string) (request, error) {
	name, argument, hasArgument := strings.Cut(s, "|")

	switch name {
	case "WITHDRAW", "DEPOSIT":
		if !hasArgument || strings.Contains(argument, "|") {
			return request{}, atm.ErrInvalidRequest
		}

		amount, err := strconv.Atoi(argument)
		if err != nil {
			return request{}, atm.ErrInvalidAmount
		}

		if name == "WITHDRAW" {
			return request{command: withdraw, amount: amount}, nil
		}

		return request{command: deposit, amount: amount}, nil
	case "BALANCE":
		if hasArgument {
			return request{}, atm.ErrInvalidRequest
		}

		return request{command: balance}, nil
	case "SEND":
		if !hasArgument {
			return request{}, atm.ErrInvalidRequest
		}

		return request{command: send, message: argument}, nil
	}

	return request{}, atm.ErrInvalidRequest
}
