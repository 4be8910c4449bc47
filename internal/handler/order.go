package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafidhani/tukang-backend/internal/model"
	"github.com/rafidhani/tukang-backend/internal/queue"
	"github.com/rafidhani/tukang-backend/internal/repository"
	queue_publisher "github.com/rafidhani/tukang-backend/internal/service"
	"github.com/rafidhani/tukang-backend/internal/storage"
)

// OrderHandler serves the order (pesanan) endpoints: submission with an
// optional photo upload, listing, detail and the two status-update routes.
type OrderHandler struct {
	Orders  *repository.OrderRepo
	Uploads *storage.UploadStore
}

func NewOrderHandler(o *repository.OrderRepo, s *storage.UploadStore) *OrderHandler {
	return &OrderHandler{Orders: o, Uploads: s}
}

// orderJSON is the serialized order shape. FotoURL is derived per request
// from the stored filename and the server's own host so clients can load
// the photo directly.
type orderJSON struct {
	ID               uint64  `json:"id"`
	NamaUser         string  `json:"nama_user"`
	KategoriJasa     string  `json:"kategori_jasa"`
	DeskripsiMasalah string  `json:"deskripsi_masalah"`
	Alamat           string  `json:"alamat"`
	FotoMasalah      *string `json:"foto_masalah"`
	Status           string  `json:"status"`
	FotoURL          *string `json:"foto_url"`
}

func toOrderJSON(c echo.Context, o model.Order) orderJSON {
	out := orderJSON{
		ID:               o.ID,
		NamaUser:         o.NamaUser,
		KategoriJasa:     o.KategoriJasa,
		DeskripsiMasalah: o.DeskripsiMasalah,
		Alamat:           o.Alamat,
		FotoMasalah:      o.FotoMasalah,
		Status:           o.Status,
	}
	if o.FotoMasalah != nil && *o.FotoMasalah != "" {
		url := c.Scheme() + "://" + c.Request().Host + "/uploads/" + *o.FotoMasalah
		out.FotoURL = &url
	}
	return out
}

// Create handles POST /api/pesanan. The body is multipart/form-data with
// text fields plus an optional "foto" file. The photo is stored first so
// a failed insert never leaves an order row pointing at a missing file.
func (h *OrderHandler) Create(c echo.Context) error {
	namaUser := c.FormValue("nama_user")
	kategori := c.FormValue("kategori")
	deskripsi := c.FormValue("deskripsi")
	alamat := c.FormValue("alamat")

	var foto *string
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		name, err := h.Uploads.Save(fh)
		if err != nil {
			c.Logger().Errorf("pesanan: save photo: %v", err)
			return c.JSON(http.StatusInternalServerError, internalError)
		}
		foto = &name
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Orders.Create(ctx, namaUser, kategori, deskripsi, alamat, foto)
	if err != nil {
		c.Logger().Errorf("pesanan: insert order: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}

	// Best-effort domain event; the broker being down must not fail the
	// submission.
	ev := queue.OrderCreatedEvent{
		OrderID:      id,
		NamaUser:     namaUser,
		KategoriJasa: kategori,
		Alamat:       alamat,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if foto != nil {
		ev.FotoMasalah = *foto
	}
	_ = queue_publisher.PublishOrderCreated(ctx, ev)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Pesanan berhasil dibuat!",
		"orderId": id,
	})
}

// List handles GET /api/pesanan and returns every order newest-first.
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("pesanan: list orders: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	data := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderJSON(c, o))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// Get handles GET /api/pesanan/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "id tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Pesanan tidak ditemukan"})
		}
		c.Logger().Errorf("pesanan: get order %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toOrderJSON(c, o)})
}

// UpdateStatus handles both PUT /api/pesanan/:id (customer "mark paid")
// and PUT /api/pesanan/:id/status (admin force status). Both routes write
// the same status column; the alias is kept for client compatibility.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "id tidak valid"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "body tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Orders.UpdateStatus(ctx, id, req.Status); err != nil {
		c.Logger().Errorf("pesanan: update status %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Status berhasil diupdate"})
}
