package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// CompraUseCase casos de uso de compras.
type CompraUseCase struct {
	repo repository.CompraRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(repo repository.CompraRepository) *CompraUseCase {
	return &CompraUseCase{repo: repo}
}

// Create registra una compra.
func (uc *CompraUseCase) Create(in dto.CreateCompraRequest) (*dto.CompraResponse, error) {
	fecha, err := parseFecha(in.FechaCompra)
	if err != nil {
		return nil, err
	}
	c := &entity.Compra{
		ID:              uuid.New().String(),
		NumeroFactura:   in.NumeroFactura,
		Proveedor:       in.Proveedor,
		FechaCompra:     fecha,
		SolicitadoPorID: in.SolicitadoPorID,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCompraResponse(c), nil
}

// GetByID obtiene una compra; nil si no existe.
func (uc *CompraUseCase) GetByID(id string) (*dto.CompraResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCompraResponse(c), nil
}

// List lista las compras.
func (uc *CompraUseCase) List() ([]dto.CompraResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompraResponse(c))
	}
	return items, nil
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	if c == nil {
		return nil
	}
	return &dto.CompraResponse{
		ID:              c.ID,
		NumeroFactura:   c.NumeroFactura,
		Proveedor:       c.Proveedor,
		FechaCompra:     c.FechaCompra.Format(formatoFecha),
		SolicitadoPorID: c.SolicitadoPorID,
		CreatedAt:       c.CreatedAt,
	}
}
