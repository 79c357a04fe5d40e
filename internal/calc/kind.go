package calc

// Kind identifies a command variant.
type Kind int

const (
	KindPush Kind = iota
	KindPop
	KindPrint
	KindDefine
	KindSqrt
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindComment

	numKinds
)

// Command names as they appear in input. Stack and parameter commands use
// upper-case words, arithmetic uses operator symbols and a lone "#" starts
// a comment line. Matching is exact and case-sensitive.
var kindNames = [numKinds]string{
	KindPush:    "PUSH",
	KindPop:     "POP",
	KindPrint:   "PRINT",
	KindDefine:  "DEFINE",
	KindSqrt:    "SQRT",
	KindAdd:     "+",
	KindSub:     "-",
	KindMul:     "*",
	KindDiv:     "/",
	KindComment: "#",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// ParseKind maps an input command name to its Kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Names returns every accepted command name in Kind order.
func Names() []string {
	out := make([]string, numKinds)
	copy(out, kindNames[:])
	return out
}
