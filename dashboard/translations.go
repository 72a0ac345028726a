package dashboard

import (
	"context"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/routes"
	"github.com/jmgilman/go/errors"
)

// TranslationService manages product translations.
type TranslationService struct {
	api *api.Client
}

// List returns every translation of a product.
func (s *TranslationService) List(ctx context.Context, productID string, opts ...api.CallOption) api.Result[[]Translation] {
	return api.List[Translation](ctx, s.api, routes.ProductTranslations(productID), opts...)
}

// Save stores a manual translation, replacing the one for its language.
func (s *TranslationService) Save(ctx context.Context, productID string, t Translation, opts ...api.CallOption) api.Result[Translation] {
	return api.Update[Translation](ctx, s.api, routes.ProductTranslations(productID), t.Language, t, opts...)
}

// Auto requests machine translations. The backend may translate
// asynchronously and acknowledge without a body, in which case the Result
// is empty.
func (s *TranslationService) Auto(ctx context.Context, productID string, req AutoTranslateRequest, opts ...api.CallOption) api.Result[[]Translation] {
	return api.Create[[]Translation](ctx, s.api, routes.AutoTranslate(productID), req, opts...)
}

// Delete removes the translation for language.
func (s *TranslationService) Delete(ctx context.Context, productID, language string, opts ...api.CallOption) api.Result[string] {
	return api.Remove(ctx, s.api, routes.ProductTranslations(productID), language, opts...)
}

// SaveAll saves several manual translations in order and emits a single
// success notification once all of them are stored. It stops at the first
// failure and returns its *api.ErrorDescriptor; earlier saves are kept.
// Per-call options such as api.WithErrorHandler apply to every save.
func (s *TranslationService) SaveAll(ctx context.Context, productID string, translations []Translation, opts ...api.CallOption) error {
	if len(translations) == 0 {
		err := errors.New(errors.CodeInvalidInput, "no translations to save")
		return errors.WithContext(err, "product_id", productID)
	}

	steps := make([]api.Step, 0, len(translations))
	for _, t := range translations {
		steps = append(steps, func(ctx context.Context, c *api.Client) error {
			_, err := api.Update[Translation](ctx, c, routes.ProductTranslations(productID), t.Language, t, opts...).Unwrap()
			return err
		})
	}

	return api.ExecuteWithSingleToast(ctx, s.api, "Translations saved successfully", steps...)
}

// Languages returns the languages products can be translated into.
func (s *TranslationService) Languages(ctx context.Context, opts ...api.CallOption) api.Result[[]Language] {
	return api.List[Language](ctx, s.api, routes.Languages, opts...)
}
