package estimate

// DefaultQuote is the quote stamped on a note when the generator
// succeeds but has nothing to say.
func DefaultQuote(language string) string {
	if language == "zh" {
		return "加油！"
	}
	return "Noot Noot! You can do it!"
}

// FallbackQuote is the deterministic quote used when the generator
// fails outright, keyed only by language so the archive flow always
// has a non-empty quote.
func FallbackQuote(language string) string {
	if language == "zh" {
		return "坚持就是胜利！"
	}
	return "Keep going!"
}
