// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every operation onto the mux. Reads are public;
// every mutating route goes through requireAuth.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Folders
	mux.HandleFunc("POST /folders", h.requireAuth(h.createFolder))
	mux.HandleFunc("GET /folders", h.listFolders)
	mux.HandleFunc("GET /folders/{folderID}", h.getFolder)
	mux.HandleFunc("PUT /folders/{folderID}", h.requireAuth(h.updateFolder))
	mux.HandleFunc("PATCH /folders/{folderID}/position", h.requireAuth(h.setFolderPosition))
	mux.HandleFunc("DELETE /folders/{folderID}", h.requireAuth(h.deleteFolder))
	mux.HandleFunc("GET /folders/{folderID}/links", h.listLinksByFolder)

	// Smart links
	mux.HandleFunc("POST /links", h.requireAuth(h.createLink))
	mux.HandleFunc("GET /links", h.listAllLinks)
	mux.HandleFunc("GET /links/root", h.listRootLinks)
	mux.HandleFunc("GET /links/{linkID}", h.getLink)
	mux.HandleFunc("PUT /links/{linkID}", h.requireAuth(h.updateLink))
	mux.HandleFunc("PATCH /links/{linkID}/folder", h.requireAuth(h.moveLink))
	mux.HandleFunc("PATCH /links/{linkID}/position", h.requireAuth(h.setLinkPosition))
	mux.HandleFunc("POST /links/reorder", h.requireAuth(h.reorderLinks))
	mux.HandleFunc("DELETE /links/{linkID}", h.requireAuth(h.deleteLink))

	// Trash
	mux.HandleFunc("GET /trash", h.listTrash)
	mux.HandleFunc("POST /trash/{entryID}/restore", h.requireAuth(h.restoreTrashEntry))
	mux.HandleFunc("DELETE /trash/{entryID}", h.requireAuth(h.permanentlyDeleteTrashEntry))

	// Auth
	mux.HandleFunc("POST /auth/register", h.register)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/logout", h.logout)
	mux.HandleFunc("GET /auth/me", h.me)

	// Contact form
	mux.HandleFunc("POST /contact", h.submitContact)
	mux.HandleFunc("GET /contact/messages", h.requireAuth(h.listContactMessages))

	// Export
	mux.HandleFunc("GET /export", h.requireAuth(h.exportAll))
}
