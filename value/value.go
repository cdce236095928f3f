// Package value implements the GILL runtime Value sum type (spec.md §3)
// and the error taxonomy (spec.md §7).
//
// Grounded on akashmaji946/go-mix's objects/objects.go: a GoMixType enum,
// a GoMixObject interface every runtime value implements, and one concrete
// struct per variant. GILL's Value set follows spec.md's closed union
// (Int, Float, Text, Char, Bool, Array, Null, Module, NativeRef) instead of
// go-mix's richer set (Map/Set/Tuple/Range/struct/enum), and adds the
// Error/ReturnSignal control values threaded through Eval the way go-mix
// threads its own.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags a Value's runtime category.
type Kind string

const (
	IntKind        Kind = "int"
	FloatKind      Kind = "float"
	TextKind       Kind = "string"
	CharKind       Kind = "char"
	BoolKind       Kind = "bool"
	ArrayKind      Kind = "array"
	NullKind       Kind = "null"
	ModuleKind     Kind = "module"
	NativeRefKind  Kind = "native_ref"
	FileKind       Kind = "file"
	ErrorKind      Kind = "error"
	ReturnKind     Kind = "return_signal"
)

// Value is implemented by every runtime value, including the internal
// control-flow signals (Error/ReturnSignal) that travel
// through the same Eval return channel as ordinary values but are never
// user-constructible.
type Value interface {
	Kind() Kind
	String() string
}

// TypeTag is a declared type name as used in Binding (spec.md §3):
// int, float, string, char, bool, void, or "T[]" for arrays.
type TypeTag string

const (
	TypeInt    TypeTag = "int"
	TypeFloat  TypeTag = "float"
	TypeString TypeTag = "string"
	TypeChar   TypeTag = "char"
	TypeBool   TypeTag = "bool"
	TypeVoid   TypeTag = "void"
	// TypeFile is a GILL addition beyond the core closed value set,
	// recognized by Define so a fileio native module handle (value.File)
	// can be captured by name and passed back into later native calls.
	TypeFile TypeTag = "file"
)

func ArrayTypeTag(elem TypeTag) TypeTag { return TypeTag(string(elem) + "[]") }

func (t TypeTag) IsArray() bool { return strings.HasSuffix(string(t), "[]") }

func (t TypeTag) ElementType() TypeTag {
	return TypeTag(strings.TrimSuffix(string(t), "[]"))
}

// Binding pairs a declared type with the current value of a name
// (spec.md §3).
type Binding struct {
	DeclaredType TypeTag
	Value        Value
}

// --- Concrete value variants ---

type Int struct{ Value int64 }

func (i *Int) Kind() Kind     { return IntKind }
func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

type Float struct{ Value float64 }

func (f *Float) Kind() Kind     { return FloatKind }
func (f *Float) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

type Text struct{ Value string }

func (s *Text) Kind() Kind     { return TextKind }
func (s *Text) String() string { return s.Value }

type Char struct{ Value rune }

func (c *Char) Kind() Kind     { return CharKind }
func (c *Char) String() string { return string(c.Value) }

type Bool struct{ Value bool }

func (b *Bool) Kind() Kind { return BoolKind }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type Array struct {
	Elements    []Value
	ElementType TypeTag
}

func (a *Array) Kind() Kind { return ArrayKind }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type Null struct{}

func (n *Null) Kind() Kind     { return NullKind }
func (n *Null) String() string { return "null" }

// Module is a handle to a loaded ModuleEnv-backed scope (import or
// namespace). The concrete environment it refers to lives in the
// environment package; Value only needs an opaque handle here to avoid an
// import cycle, so it stores the module name and a back-reference as `any`.
type Module struct {
	Name string
	Env  any // *environment.Environment, set by the environment/interp packages
}

func (m *Module) Kind() Kind     { return ModuleKind }
func (m *Module) String() string { return fmt.Sprintf("<module %s>", m.Name) }

// NativeRefMemberKind distinguishes what a NativeRef addresses.
type NativeRefMemberKind string

const (
	NativeRefFunction NativeRefMemberKind = "function"
	NativeRefVariable NativeRefMemberKind = "variable"
)

// NativeRef is produced by the scope-resolution operator (module::member)
// applied to a Module value (spec.md §4.3 BinOp/SCOPERESOP).
type NativeRef struct {
	ModuleHandle any // *environment.Environment
	ModuleName   string
	MemberName   string
	MemberKind   NativeRefMemberKind
}

func (r *NativeRef) Kind() Kind { return NativeRefKind }
func (r *NativeRef) String() string {
	return fmt.Sprintf("<native_ref %s::%s>", r.ModuleName, r.MemberName)
}

// File is a stateful handle to an open OS file, produced by the fileio
// native module's fopen. GILL's closed value union (spec.md §3) has no
// file literal syntax, so File only ever arises as a native call's return
// value and is opaque to everything except the fileio module.
type File struct {
	Handle any // *os.File, kept as `any` to avoid importing "os" here
	Path   string
	Closed bool
}

func (f *File) Kind() Kind { return FileKind }
func (f *File) String() string {
	if f.Closed {
		return fmt.Sprintf("<file %s (closed)>", f.Path)
	}
	return fmt.Sprintf("<file %s>", f.Path)
}

// --- Error taxonomy (spec.md §7) ---

type ErrorCode string

const (
	LexError      ErrorCode = "LexError"
	ParseError    ErrorCode = "ParseError"
	NameError     ErrorCode = "NameError"
	TypeError     ErrorCode = "TypeError"
	IndexError    ErrorCode = "IndexError"
	ValueError    ErrorCode = "ValueError"
	ImportError   ErrorCode = "ImportError"
	RuntimeError  ErrorCode = "RuntimeError"
	NotImplError  ErrorCode = "NotImplementedError"
)

// Error is the evaluator's uniform error value. It carries an error-kind
// tag and a human message, plus source position when known.
type Error struct {
	Code    ErrorCode
	Message string
	Line    int
	Column  int
}

func (e *Error) Kind() Kind { return ErrorKind }
func (e *Error) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d, column %d)", e.Code, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewErrorAt(code ErrorCode, line, column int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// ReturnSignal carries a function's return value as a non-error control
// value (spec.md §5). It is never user-visible and must never be caught
// by TryCatch — only consumed at the enclosing FunctionCall evaluation
// point.
type ReturnSignal struct{ Value Value }

func (r *ReturnSignal) Kind() Kind     { return ReturnKind }
func (r *ReturnSignal) String() string { return "<return>" }

// IsError reports whether v is an *Error.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}

// IsReturn reports whether v is a *ReturnSignal.
func IsReturn(v Value) bool {
	_, ok := v.(*ReturnSignal)
	return ok
}

// Truthy implements the Python-style truthiness GILL's bool cast and
// conditionals use (spec.md §4.3 Cast/If).
func Truthy(v Value) bool {
	switch x := v.(type) {
	case *Bool:
		return x.Value
	case *Int:
		return x.Value != 0
	case *Float:
		return x.Value != 0
	case *Text:
		return x.Value != ""
	case *Char:
		return x.Value != 0
	case *Array:
		return len(x.Elements) > 0
	case *Null:
		return false
	default:
		return true
	}
}

// CheckType implements spec.md §4.3's type-check table used by Define.
func CheckType(v Value, declared TypeTag) bool {
	switch declared {
	case TypeInt:
		_, ok := v.(*Int)
		return ok
	case TypeFloat:
		_, ok := v.(*Float)
		return ok
	case TypeString:
		_, ok := v.(*Text)
		return ok
	case TypeChar:
		if c, ok := v.(*Char); ok {
			_ = c
			return true
		}
		if s, ok := v.(*Text); ok {
			return len([]rune(s.Value)) == 1
		}
		return false
	case TypeBool:
		_, ok := v.(*Bool)
		return ok
	case TypeVoid:
		_, ok := v.(*Null)
		return ok
	case TypeFile:
		_, ok := v.(*File)
		return ok
	default:
		return false
	}
}
