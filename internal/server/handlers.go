package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roach88/quickcart/internal/app"
	"github.com/roach88/quickcart/internal/model"
)

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	if _, err := s.ctrl.Login(r.Context(), body.Email, body.Password); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string     `json:"name"`
		Email    string     `json:"email"`
		Password string     `json:"password"`
		Role     model.Role `json:"role"`
	}
	if !decode(w, r, &body) {
		return
	}
	// Self-registration only creates customers; admins are provisioned
	// out-of-band via the CLI.
	if body.Role == "" || body.Role != model.RoleCustomer {
		body.Role = model.RoleCustomer
	}
	if _, err := s.ctrl.Register(r.Context(), body.Name, body.Email, body.Password, body.Role); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusCreated, s.ctrl.View())
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.Logout(r.Context()); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSelectTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab app.Tab `json:"tab"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.SelectTab(body.Tab); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.SelectCategory(body.Category); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.AddToCart(body.ProductID); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Delta int `json:"delta"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.UpdateQuantity(chi.URLParam(r, "productID"), body.Delta); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.RemoveFromCart(chi.URLParam(r, "productID")); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleCloseCart(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.CloseCart(); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSetDelivery(w http.ResponseWriter, r *http.Request) {
	var body model.DeliveryDetails
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.SetDeliveryDetails(body); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	text, link, err := s.ctrl.Checkout()
	if err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{
		"message":      text,
		"whatsapp_url": link,
	})
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var body model.ProductInput
	if !decode(w, r, &body) {
		return
	}
	p, err := s.ctrl.AddProduct(body)
	if err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusCreated, map[string]any{
		"product": p,
		"view":    s.ctrl.View(),
	})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.DeleteProduct(chi.URLParam(r, "productID")); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.AddCategory(body.Name); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		JSONError(w, http.StatusConflict, "confirmation required: pass confirm=true")
		return
	}
	if err := s.ctrl.DeleteCategory(chi.URLParam(r, "name")); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.ctrl.Users()
	if err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		JSONError(w, http.StatusConflict, "confirmation required: pass confirm=true")
		return
	}
	if err := s.ctrl.DeleteUser(r.Context(), chi.URLParam(r, "userID")); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSetAdminView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		View app.AdminView `json:"view"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.ctrl.SetAdminView(body.View); err != nil {
		respondErr(w, err)
		return
	}
	JSON(w, http.StatusOK, s.ctrl.View())
}
