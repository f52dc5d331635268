package screen

import (
	"context"

	"gitlab.com/screener/screenk"
	"gitlab.com/screener/screenk/locator"
)

func (s *Screen) byRole(role string, opts []Option) locator.Locator {
	return locator.Role(role, s.locatorOptions(s.options(opts))...)
}

func (s *Screen) byText(text string, opts []Option) locator.Locator {
	return locator.Text(text, s.locatorOptions(s.options(opts))...)
}

func (s *Screen) byPlaceholder(text string, opts []Option) locator.Locator {
	return locator.PlaceholderText(text, s.locatorOptions(s.options(opts))...)
}

// GetByRole returns the one element whose role attribute matches role
func (s *Screen) GetByRole(ctx context.Context, role string, opts ...Option) (screenk.Element, error) {
	return s.Get(ctx, s.byRole(role, opts))
}

func (s *Screen) QueryByRole(ctx context.Context, role string, opts ...Option) (screenk.Element, error) {
	return s.Query(ctx, s.byRole(role, opts))
}

func (s *Screen) FindByRole(ctx context.Context, role string, opts ...Option) (screenk.Element, error) {
	return s.Find(ctx, s.byRole(role, opts), opts...)
}

func (s *Screen) GetAllByRole(ctx context.Context, role string, opts ...Option) ([]screenk.Element, error) {
	return s.GetAll(ctx, s.byRole(role, opts))
}

func (s *Screen) QueryAllByRole(ctx context.Context, role string, opts ...Option) ([]screenk.Element, error) {
	return s.QueryAll(ctx, s.byRole(role, opts))
}

func (s *Screen) FindAllByRole(ctx context.Context, role string, opts ...Option) ([]screenk.Element, error) {
	return s.FindAll(ctx, s.byRole(role, opts), opts...)
}

// GetByText returns the one element owning a text node that matches text.
// Only direct text children count, text nested in child elements does not.
func (s *Screen) GetByText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Get(ctx, s.byText(text, opts))
}

func (s *Screen) QueryByText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Query(ctx, s.byText(text, opts))
}

func (s *Screen) FindByText(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Find(ctx, s.byText(text, opts), opts...)
}

func (s *Screen) GetAllByText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.GetAll(ctx, s.byText(text, opts))
}

func (s *Screen) QueryAllByText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.QueryAll(ctx, s.byText(text, opts))
}

func (s *Screen) FindAllByText(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.FindAll(ctx, s.byText(text, opts), opts...)
}

// GetByPlaceholder returns the one element whose placeholder matches text
func (s *Screen) GetByPlaceholder(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Get(ctx, s.byPlaceholder(text, opts))
}

func (s *Screen) QueryByPlaceholder(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Query(ctx, s.byPlaceholder(text, opts))
}

func (s *Screen) FindByPlaceholder(ctx context.Context, text string, opts ...Option) (screenk.Element, error) {
	return s.Find(ctx, s.byPlaceholder(text, opts), opts...)
}

func (s *Screen) GetAllByPlaceholder(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.GetAll(ctx, s.byPlaceholder(text, opts))
}

func (s *Screen) QueryAllByPlaceholder(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.QueryAll(ctx, s.byPlaceholder(text, opts))
}

func (s *Screen) FindAllByPlaceholder(ctx context.Context, text string, opts ...Option) ([]screenk.Element, error) {
	return s.FindAll(ctx, s.byPlaceholder(text, opts), opts...)
}
