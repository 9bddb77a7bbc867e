package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dealerlot/internal/delivery/http/middleware"
	"dealerlot/internal/delivery/http/response"
	"dealerlot/internal/domain/entity"
	"dealerlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddCarRequest is the POST /api/cars body.
type AddCarRequest struct {
	Make       string  `json:"make" validate:"required,alphanum,max=20"`
	Model      string  `json:"model" validate:"required,alphanum,max=20"`
	Year       int     `json:"year" validate:"required"`
	StockLevel int     `json:"stockLevel"`
	Price      float64 `json:"price"`
}

// UpdateStockRequest is the PUT /api/cars/:id/stock body.
type UpdateStockRequest struct {
	StockLevel int     `json:"stockLevel"`
	Price      float64 `json:"price"`
}

// CarResponse is the wire representation of a car. The owning dealer id is
// implied by the authenticated caller and never echoed back.
type CarResponse struct {
	ID         int64     `json:"id"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	StockLevel int       `json:"stockLevel"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CarHandler holds dependencies for inventory handlers.
type CarHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewCarHandler is the constructor for CarHandler, injected by Fx.
func NewCarHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		uc:     uc,
		logger: logger,
	}
}

// dealerID extracts the authenticated dealer id placed on the context by the
// auth middleware. The id always comes from validated claims, never the body.
func dealerID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.ContextKeyDealerID).(int64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing dealer identity")
	}

	return id, nil
}

func carID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "car not found")
	}

	return id, nil
}

// ListCars handles GET /api/cars.
func (h *CarHandler) ListCars(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}

	cars, err := h.uc.List(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars), "")
}

// GetCar handles GET /api/cars/:id.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}
	cid, err := carID(c)
	if err != nil {
		return err
	}

	car, err := h.uc.Get(c.Request().Context(), id, cid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car), "")
}

// AddCar handles POST /api/cars. On success it returns 201 with a Location
// header pointing at the new resource.
func (h *CarHandler) AddCar(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}

	var req AddCarRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid car input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	car, err := h.uc.Add(c.Request().Context(), id, &usecase.AddCarInput{
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		StockLevel: req.StockLevel,
		Price:      req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/cars/%d", car.ID))

	return response.Success(c, http.StatusCreated, toCarResponse(car), "Car added successfully")
}

// UpdateStock handles PUT /api/cars/:id/stock.
func (h *CarHandler) UpdateStock(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}
	cid, err := carID(c)
	if err != nil {
		return err
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid stock input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	car, err := h.uc.UpdateStock(c.Request().Context(), id, cid, &usecase.UpdateStockInput{
		StockLevel: req.StockLevel,
		Price:      req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car), "Car updated successfully")
}

// RemoveCar handles DELETE /api/cars/:id.
func (h *CarHandler) RemoveCar(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}
	cid, err := carID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), id, cid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true, "Car removed successfully")
}

// SearchCars handles GET /api/cars/search?make=&model=. The result is always an
// array, possibly empty; missing filters are no-ops.
func (h *CarHandler) SearchCars(c echo.Context) error {
	id, err := dealerID(c)
	if err != nil {
		return err
	}

	cars, err := h.uc.Search(c.Request().Context(), id, c.QueryParam("make"), c.QueryParam("model"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars), "")
}

func toCarResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:         car.ID,
		Make:       car.Make,
		Model:      car.Model,
		Year:       car.Year,
		StockLevel: car.StockLevel,
		Price:      car.Price,
		CreatedAt:  car.CreatedAt,
		UpdatedAt:  car.UpdatedAt,
	}
}

func toCarResponses(cars []*entity.Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, toCarResponse(car))
	}

	return out
}
