package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Journal *JournalHandler
	Notice  *NoticeHandler
	Locale  *LocaleHandler
}
