package mock

import "github.com/fwojciec/locrecipe"

var _ locrecipe.TextProcessor = (*TextProcessor)(nil)

// TextProcessor is a mock implementation of locrecipe.TextProcessor.
type TextProcessor struct {
	NormalizeFn func(s string) string
	MinutesFn   func(s string) (int, error)
	YieldsFn    func(s string) (string, error)
	TagsFn      func(s string) []string
	DietNameFn  func(s string) string
}

func (p *TextProcessor) Normalize(s string) string {
	return p.NormalizeFn(s)
}

func (p *TextProcessor) Minutes(s string) (int, error) {
	return p.MinutesFn(s)
}

func (p *TextProcessor) Yields(s string) (string, error) {
	return p.YieldsFn(s)
}

func (p *TextProcessor) Tags(s string) []string {
	return p.TagsFn(s)
}

func (p *TextProcessor) DietName(s string) string {
	return p.DietNameFn(s)
}
