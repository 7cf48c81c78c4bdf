package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	UserHandler          *UserHandler
	WorkerProfileHandler *WorkerProfileHandler
	WorkerGigHandler     *WorkerGigHandler
}
