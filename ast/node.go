// Package ast defines the GILL abstract syntax tree: a closed tagged union
// of node variants (spec.md §3) expressed as a common Node interface plus
// one concrete struct per variant, dispatched through a single Visitor.
//
// Grounded on akashmaji946/go-mix's parser/node.go (NodeVisitor interface,
// one Visit<X> method per concrete node, Accept/Literal methods on every
// node), generalized to GILL's node set instead of go-mix's.
package ast

import "github.com/gill-lang/gill/token"

// Node is implemented by every AST node. Accept dispatches to the single
// matching method on Visitor — the only form of polymorphism the tree
// uses; there is no per-node Eval method.
type Node interface {
	Accept(v Visitor) any
	Literal() string
}

// Visitor has one method per concrete node variant. The interpreter is the
// only production implementation; a second (e.g. a pretty-printer) can be
// added without touching node definitions.
type Visitor interface {
	VisitNumber(n *NumberNode) any
	VisitString(n *StringNode) any
	VisitChar(n *CharNode) any
	VisitBoolean(n *BooleanNode) any
	VisitIdentifier(n *IdentifierNode) any
	VisitArrayAccess(n *ArrayAccessNode) any
	VisitBinOp(n *BinOpNode) any
	VisitUnaryOp(n *UnaryOpNode) any
	VisitCast(n *CastNode) any
	VisitInc(n *IncNode) any
	VisitDec(n *DecNode) any
	VisitDefine(n *DefineNode) any
	VisitAssign(n *AssignNode) any
	VisitBlock(n *BlockNode) any
	VisitIf(n *IfNode) any
	VisitWhile(n *WhileNode) any
	VisitFor(n *ForNode) any
	VisitForEach(n *ForEachNode) any
	VisitSwitch(n *SwitchNode) any
	VisitCase(n *CaseNode) any
	VisitDefault(n *DefaultNode) any
	VisitTryCatch(n *TryCatchNode) any
	VisitFunctionDefinition(n *FunctionDefinitionNode) any
	VisitFunctionCall(n *FunctionCallNode) any
	VisitReturn(n *ReturnNode) any
	VisitArray(n *ArrayNode) any
	VisitOutput(n *OutputNode) any
	VisitImport(n *ImportNode) any
	VisitNamespace(n *NamespaceNode) any
	VisitScopeRef(n *ScopeRefNode) any
}

// Pos carries the source position a node was parsed from, used for error
// reporting by the interpreter.
type Pos struct {
	Line   int
	Column int
}

// --- Literals ---

type NumberNode struct {
	Pos
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

func (n *NumberNode) Accept(v Visitor) any { return v.VisitNumber(n) }
func (n *NumberNode) Literal() string      { return "Number" }

type StringNode struct {
	Pos
	Value string
}

func (n *StringNode) Accept(v Visitor) any { return v.VisitString(n) }
func (n *StringNode) Literal() string      { return "String" }

type CharNode struct {
	Pos
	Value rune
}

func (n *CharNode) Accept(v Visitor) any { return v.VisitChar(n) }
func (n *CharNode) Literal() string      { return "Char" }

type BooleanNode struct {
	Pos
	Value bool
}

func (n *BooleanNode) Accept(v Visitor) any { return v.VisitBoolean(n) }
func (n *BooleanNode) Literal() string      { return "Boolean" }

// --- References ---

type IdentifierNode struct {
	Pos
	Name         string
	DeclaredType string // optional; the parser leaves it empty (parameters are ParameterNode)
}

func (n *IdentifierNode) Accept(v Visitor) any { return v.VisitIdentifier(n) }
func (n *IdentifierNode) Literal() string      { return "Identifier" }

type ArrayAccessNode struct {
	Pos
	ArrayName string
	Index     Node
}

func (n *ArrayAccessNode) Accept(v Visitor) any { return v.VisitArrayAccess(n) }
func (n *ArrayAccessNode) Literal() string      { return "ArrayAccess" }

// ScopeRefNode is a bare `module::identifier` reference used as an
// expression (not a function call — those go through FunctionCallNode's
// ModuleName field per the `exec module::name(...)` grammar).
type ScopeRefNode struct {
	Pos
	ScopeName  string
	Identifier string
}

func (n *ScopeRefNode) Accept(v Visitor) any { return v.VisitScopeRef(n) }
func (n *ScopeRefNode) Literal() string      { return "ScopeRef" }

// --- Operators ---

type BinOpNode struct {
	Pos
	Left  Node
	Op    token.Kind
	Right Node
}

func (n *BinOpNode) Accept(v Visitor) any { return v.VisitBinOp(n) }
func (n *BinOpNode) Literal() string      { return "BinOp" }

type UnaryOpNode struct {
	Pos
	Op      token.Kind
	Operand Node
}

func (n *UnaryOpNode) Accept(v Visitor) any { return v.VisitUnaryOp(n) }
func (n *UnaryOpNode) Literal() string      { return "UnaryOp" }

type CastNode struct {
	Pos
	TargetType string
	Expr       Node
}

func (n *CastNode) Accept(v Visitor) any { return v.VisitCast(n) }
func (n *CastNode) Literal() string      { return "Cast" }

type IncNode struct {
	Pos
	Name string
}

func (n *IncNode) Accept(v Visitor) any { return v.VisitInc(n) }
func (n *IncNode) Literal() string      { return "Inc" }

type DecNode struct {
	Pos
	Name string
}

func (n *DecNode) Accept(v Visitor) any { return v.VisitDec(n) }
func (n *DecNode) Literal() string      { return "Dec" }

// --- Declarations / mutation ---

type DefineNode struct {
	Pos
	Name         string
	DeclaredType string
	DeclaredSize *int // non-nil for array definitions
	Value        Node
}

func (n *DefineNode) Accept(v Visitor) any { return v.VisitDefine(n) }
func (n *DefineNode) Literal() string      { return "Define" }

type AssignNode struct {
	Pos
	Name  string
	Value Node
}

func (n *AssignNode) Accept(v Visitor) any { return v.VisitAssign(n) }
func (n *AssignNode) Literal() string      { return "Assign" }

// --- Blocks ---

type BlockNode struct {
	Pos
	Statements []Node
}

func (n *BlockNode) Accept(v Visitor) any { return v.VisitBlock(n) }
func (n *BlockNode) Literal() string      { return "Block" }

// --- Control flow ---

type IfNode struct {
	Pos
	Condition Node
	Then      *BlockNode
	Else      *BlockNode // nil when absent
}

func (n *IfNode) Accept(v Visitor) any { return v.VisitIf(n) }
func (n *IfNode) Literal() string      { return "If" }

type WhileNode struct {
	Pos
	Condition Node
	Body      *BlockNode
}

func (n *WhileNode) Accept(v Visitor) any { return v.VisitWhile(n) }
func (n *WhileNode) Literal() string      { return "While" }

type ForNode struct {
	Pos
	InitName    string
	InitType    string
	InitValue   Node
	Condition   Node
	Step        Node // a statement node: Assign/Inc/Dec
	Body        *BlockNode
}

func (n *ForNode) Accept(v Visitor) any { return v.VisitFor(n) }
func (n *ForNode) Literal() string      { return "For" }

type ForEachNode struct {
	Pos
	IterName string
	IterType string
	Iterable Node
	Body     *BlockNode
}

func (n *ForEachNode) Accept(v Visitor) any { return v.VisitForEach(n) }
func (n *ForEachNode) Literal() string      { return "ForEach" }

type CaseNode struct {
	Pos
	Value Node
	Body  *BlockNode
}

func (n *CaseNode) Accept(v Visitor) any { return v.VisitCase(n) }
func (n *CaseNode) Literal() string      { return "Case" }

type DefaultNode struct {
	Pos
	Body *BlockNode
}

func (n *DefaultNode) Accept(v Visitor) any { return v.VisitDefault(n) }
func (n *DefaultNode) Literal() string      { return "Default" }

type SwitchNode struct {
	Pos
	Expr    Node
	Cases   []*CaseNode
	Default *DefaultNode // nil when absent
}

func (n *SwitchNode) Accept(v Visitor) any { return v.VisitSwitch(n) }
func (n *SwitchNode) Literal() string      { return "Switch" }

type TryCatchNode struct {
	Pos
	Try     *BlockNode
	Catch   *BlockNode
	Finally *BlockNode // nil when absent
}

func (n *TryCatchNode) Accept(v Visitor) any { return v.VisitTryCatch(n) }
func (n *TryCatchNode) Literal() string      { return "TryCatch" }

// --- Procedures ---

type ParameterNode struct {
	Pos
	Name         string
	DeclaredType string
	Default      Node // nil when absent
}

type FunctionDefinitionNode struct {
	Pos
	Name       string
	Params     []*ParameterNode
	Body       *BlockNode
	ReturnType string
}

func (n *FunctionDefinitionNode) Accept(v Visitor) any { return v.VisitFunctionDefinition(n) }
func (n *FunctionDefinitionNode) Literal() string      { return "FunctionDefinition" }

type FunctionCallNode struct {
	Pos
	Name       string
	Args       []Node
	ModuleName string // empty when unqualified
}

func (n *FunctionCallNode) Accept(v Visitor) any { return v.VisitFunctionCall(n) }
func (n *FunctionCallNode) Literal() string      { return "FunctionCall" }

type ReturnNode struct {
	Pos
	Expr Node
}

func (n *ReturnNode) Accept(v Visitor) any { return v.VisitReturn(n) }
func (n *ReturnNode) Literal() string      { return "Return" }

// --- Data ---

type ArrayNode struct {
	Pos
	Elements     []Node
	DeclaredSize int
}

func (n *ArrayNode) Accept(v Visitor) any { return v.VisitArray(n) }
func (n *ArrayNode) Literal() string      { return "Array" }

// --- Output ---

type OutputNode struct {
	Pos
	Expr Node
}

func (n *OutputNode) Accept(v Visitor) any { return v.VisitOutput(n) }
func (n *OutputNode) Literal() string      { return "Output" }

// --- Modules ---

type ImportNode struct {
	Pos
	ModuleName string
}

func (n *ImportNode) Accept(v Visitor) any { return v.VisitImport(n) }
func (n *ImportNode) Literal() string      { return "Import" }

type NamespaceNode struct {
	Pos
	Name string
	Body *BlockNode
}

func (n *NamespaceNode) Accept(v Visitor) any { return v.VisitNamespace(n) }
func (n *NamespaceNode) Literal() string      { return "Namespace" }
