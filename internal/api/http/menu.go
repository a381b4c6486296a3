package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

// getMenu is public: categories by position with their available items.
func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	m, err := s.repo.Menu().GetMenu(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityMenuToDto(m))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := s.repo.Menu().ListCategories(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityCategoriesToDto(cs))
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	req := &dto.CategoryRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	id, err := s.repo.Menu().AddCategory(r.Context(), dto.ConvertCategoryRequestToEntity(req))
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.Category{Id: id, Name: req.Name, Position: req.Position})
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	req := &dto.CategoryRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Menu().UpdateCategory(r.Context(), id, dto.ConvertCategoryRequestToEntity(req)); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Menu().DeleteCategoryById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	categoryId := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			renderError(w, r, gerr.InvalidRequest("invalid category_id %q", raw))
			return
		}
		categoryId = n
	}
	is, err := s.repo.Menu().ListItems(r.Context(), categoryId)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityItemsToDto(is))
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	req := &dto.ItemRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	id, err := s.repo.Menu().AddItem(r.Context(), dto.ConvertItemRequestToEntity(req))
	if err != nil {
		renderError(w, r, err)
		return
	}
	it, err := s.repo.Menu().GetItemById(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.ConvertEntityItemToDto(it))
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	it, err := s.repo.Menu().GetItemById(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityItemToDto(it))
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	req := &dto.ItemRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Menu().UpdateItem(r.Context(), id, dto.ConvertItemRequestToEntity(req)); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Menu().DeleteItemById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}
