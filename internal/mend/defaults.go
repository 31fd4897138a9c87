package mend

import "regexp"

// mutableDefaultPatterns are the four shared-mutable-default shapes:
// optional-list, optional-dict, plain-list, plain-dict. The generic
// parameter submatch is optional (bare "Dict = {}" occurs in generated
// output) and lazy, but backtracks across nested parameters, so
// "Optional[List[Dict[str, Any]]] = []" keeps its exact element type.
var mutableDefaultPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{
		regexp.MustCompile(`(\s+)(\w+): Optional\[List(\[.*?\])?\] = \[\]`),
		"${1}${2}: Optional[List${3}] = field(default_factory=list)",
	},
	{
		regexp.MustCompile(`(\s+)(\w+): Optional\[Dict(\[.*?\])?\] = \{\}`),
		"${1}${2}: Optional[Dict${3}] = field(default_factory=dict)",
	},
	{
		regexp.MustCompile(`(\s+)(\w+): List(\[.*?\])? = \[\]`),
		"${1}${2}: List${3} = field(default_factory=list)",
	},
	{
		regexp.MustCompile(`(\s+)(\w+): Dict(\[.*?\])? = \{\}`),
		"${1}${2}: Dict${3} = field(default_factory=dict)",
	},
}

// MendMutableDefaults rewrites field declarations whose default is a literal
// empty collection into deferred-construction form. A literal default is a
// single mutable object aliased by every instance of the record; the rewrite
// produces a factory invoked once per instance construction instead.
//
// Fields with non-empty literal defaults or defaults that already use
// deferred construction match none of the patterns and are left untouched.
// Returns the rewritten text and the number of declarations rewritten.
func MendMutableDefaults(src string) (string, int) {
	total := 0

	for _, p := range mutableDefaultPatterns {
		total += len(p.re.FindAllStringIndex(src, -1))
		src = p.re.ReplaceAllString(src, p.repl)
	}

	return src, total
}
