package usecase

import (
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// GeneradorQR puerto del generador de códigos QR.
type GeneradorQR interface {
	URLDetalle(codigoActivo string) string
	PNG(codigoActivo string) ([]byte, error)
}

// GeneradorEtiqueta puerto del generador de etiquetas PDF.
type GeneradorEtiqueta interface {
	GenerarEtiqueta(activo *entity.Activo, ubicacion *entity.Ubicacion, urlQR string) ([]byte, error)
}

// EtiquetaUseCase genera el QR y la etiqueta imprimible de un activo.
type EtiquetaUseCase struct {
	activos     repository.ActivoRepository
	ubicaciones repository.UbicacionRepository
	qr          GeneradorQR
	pdf         GeneradorEtiqueta
}

// NewEtiquetaUseCase construye el caso de uso.
func NewEtiquetaUseCase(activos repository.ActivoRepository, ubicaciones repository.UbicacionRepository, qr GeneradorQR, pdf GeneradorEtiqueta) *EtiquetaUseCase {
	return &EtiquetaUseCase{activos: activos, ubicaciones: ubicaciones, qr: qr, pdf: pdf}
}

// QRPNG devuelve el PNG del QR de un activo existente.
func (uc *EtiquetaUseCase) QRPNG(codigo string) ([]byte, error) {
	activo, err := uc.activos.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.qr.PNG(activo.CodigoActivo)
}

// EtiquetaPDF devuelve la etiqueta PDF de un activo existente.
func (uc *EtiquetaUseCase) EtiquetaPDF(codigo string) ([]byte, error) {
	activo, err := uc.activos.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, domain.ErrNotFound
	}
	var ubicacion *entity.Ubicacion
	if activo.UbicacionID != nil {
		ubicacion, err = uc.ubicaciones.GetByID(*activo.UbicacionID)
		if err != nil {
			return nil, err
		}
	}
	return uc.pdf.GenerarEtiqueta(activo, ubicacion, uc.qr.URLDetalle(activo.CodigoActivo))
}
