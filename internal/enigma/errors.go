package enigma

import "fmt"

// Kind classifies an Error by the part of the input that was wrong.
type Kind int

const (
	// KindConfig covers malformed or truncated machine descriptions.
	KindConfig Kind = iota + 1
	// KindRotor covers unknown rotor names and rotors placed in a slot
	// they cannot occupy.
	KindRotor
	// KindSetting covers setting and ring strings of the wrong length or
	// containing characters outside the alphabet.
	KindSetting
	// KindSetup covers malformed setup lines.
	KindSetup
	// KindAlphabet covers invalid index or character lookups.
	KindAlphabet
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRotor:
		return "rotor"
	case KindSetting:
		return "setting"
	case KindSetup:
		return "setup"
	case KindAlphabet:
		return "alphabet"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type raised by the machine and its loaders.
//
// Callers match a category with errors.Is against one of the sentinel
// values below; the message is meant for the operator.
type Error struct {
	Kind Kind
	Msg  string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrConfig   = &Error{Kind: KindConfig, Msg: "invalid configuration"}
	ErrRotor    = &Error{Kind: KindRotor, Msg: "invalid rotor"}
	ErrSetting  = &Error{Kind: KindSetting, Msg: "invalid setting"}
	ErrSetup    = &Error{Kind: KindSetup, Msg: "invalid setup line"}
	ErrAlphabet = &Error{Kind: KindAlphabet, Msg: "invalid alphabet lookup"}
)

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf is like Errorf but records err as the cause. The message is
// followed by ": " and err's text.
func Wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...) + ": " + err.Error(), Err: err}
}
