// Package i18n loads translation catalogs and resolves keys per language.
//
// Translations are nested maps keyed by language at the top level. They are
// loaded through a TranslationAdapter: MapAdapter for in-memory data,
// FileAdapter for a single YAML/JSON file, FSAdapter/NewDirectoryAdapter for
// every supported file in a directory and DefaultAdapter for the built-in
// validation messages (English and Spanish). MergeAdapter layers several
// sources so project files can override the defaults.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MergeAdapter{
//		i18n.DefaultAdapter(),
//		i18n.NewDirectoryAdapter("./translations"),
//	}, i18n.WithDefaultLanguage("en"))
//
// Keys are dot separated ("validation.required"). Requested languages are
// negotiated with golang.org/x/text/language, so "es-AR" resolves to "es".
//
// Catalog binds a language and namespace into a plain lookup function that
// the validator consumes as its message source.
package i18n
