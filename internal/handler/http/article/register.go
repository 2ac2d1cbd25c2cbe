package article

import (
	"net/http"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	artUC "cahaya-digital/internal/usecase/article"
)

// Default sizes of the homepage selections.
const (
	FeaturedLimit    = 3
	BreakingLimit    = 1
	EditorsPickLimit = 1
	PopularLimit     = 5
)

// Register registers all article-related HTTP handlers with the given mux.
// Reads are public; create, update and delete require the editor role or higher.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, tokens *auth.TokenIssuer) {
	paginationCfg = paginationCfg.WithDefaults()
	editor := tokens.Require(entity.RoleEditor)

	mux.Handle("GET /api/articles", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET /api/articles/category/{category}", CategoryHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET /api/articles/featured", SelectionHandler{Name: "featured", List: svc.Featured, DefaultLimit: FeaturedLimit, MaxLimit: paginationCfg.MaxLimit})
	mux.Handle("GET /api/articles/breaking", SelectionHandler{Name: "breaking", List: svc.Breaking, DefaultLimit: BreakingLimit, MaxLimit: paginationCfg.MaxLimit})
	mux.Handle("GET /api/articles/editors-pick", SelectionHandler{Name: "editors_pick", List: svc.EditorsPick, DefaultLimit: EditorsPickLimit, MaxLimit: paginationCfg.MaxLimit})
	mux.Handle("GET /api/articles/popular", SelectionHandler{Name: "popular", List: svc.Popular, DefaultLimit: PopularLimit, MaxLimit: paginationCfg.MaxLimit})
	mux.Handle("GET /api/articles/{id}", GetHandler{svc})

	mux.Handle("POST /api/articles", editor(CreateHandler{svc}))
	mux.Handle("PATCH /api/articles/{id}", editor(UpdateHandler{svc}))
	mux.Handle("DELETE /api/articles/{id}", editor(DeleteHandler{svc}))
}
