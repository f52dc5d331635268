package screen

import (
	"context"

	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

// labels resolves to the <label> elements of a LabelMatch, not to what they
// label. The discipline is applied to the labels, the labelled elements are
// looked up once afterwards and the cardinality of singular forms is checked
// on them.
type labels struct {
	locator.LabelMatch
}

func (l labels) Resolve(ctx context.Context, d screenk.Driver) ([]screenk.Element, error) {
	return d.FindElements(ctx, l.Query())
}

func (l labels) String() string {
	return "label of " + l.LabelMatch.String()
}

func (s *Screen) byLabelText(text string, opts []Option) locator.LabelMatch {
	return locator.LabelText(text, s.locatorOptions(s.options(opts))...)
}

// GetByLabelText requires at least one matching label, and exactly one
// element labelled by the matching labels. Labels pointing at nothing are
// left out.
func (s *Screen) GetByLabelText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.GetAll(ctx, labels{lm})
	if err != nil {
		return nil, err
	}
	targets, err := lm.Targets(ctx, s.driver, found)
	if err != nil {
		return nil, err
	}
	return single(lm, targets)
}

// QueryByLabelText returns nil when no label matches or the matching labels
// label nothing.
func (s *Screen) QueryByLabelText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.QueryAll(ctx, labels{lm})
	if err != nil {
		return nil, err
	}
	targets, err := lm.Targets(ctx, s.driver, found)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, nil
	}
	return single(lm, targets)
}

// FindByLabelText polls for the labels; the labelled element is looked up
// once labels show up and is not waited for.
func (s *Screen) FindByLabelText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.FindAll(ctx, labels{lm}, opts...)
	if err != nil {
		return nil, err
	}
	targets, err := lm.Targets(ctx, s.driver, found)
	if err != nil {
		return nil, err
	}
	return single(lm, targets)
}

func (s *Screen) GetAllByLabelText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.GetAll(ctx, labels{lm})
	if err != nil {
		return nil, err
	}
	return s.allTargets(ctx, lm, found)
}

func (s *Screen) QueryAllByLabelText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.QueryAll(ctx, labels{lm})
	if err != nil {
		return nil, err
	}
	return lm.Targets(ctx, s.driver, found)
}

func (s *Screen) FindAllByLabelText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	lm := s.byLabelText(text, opts)
	found, err := s.FindAll(ctx, labels{lm}, opts...)
	if err != nil {
		return nil, err
	}
	return s.allTargets(ctx, lm, found)
}

func (s *Screen) allTargets(ctx context.Context, lm locator.LabelMatch, found []screenk.Element) ([]screenk.Element, error) {
	targets, err := lm.Targets(ctx, s.driver, found)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, notFound(lm)
	}
	return targets, nil
}
