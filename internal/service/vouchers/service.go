package vouchers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	orderRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/order"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
	"github.com/illapa-dev/TourOperatorService/pkg/walink"
)

// OrderRepository interfaz reducida del repositorio de reservas
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CompanyInfo datos de la empresa impresos en el voucher
type CompanyInfo struct {
	Name          string
	PublicBaseURL string
	WhatsAppPhone string
}

// Service genera el voucher PDF de una reserva: datos de la reserva,
// total formateado, un código QR con la URL pública de la reserva y
// un enlace directo de WhatsApp para consultas.
type Service struct {
	orderRepo OrderRepository
	company   CompanyInfo
	logger    Logger
}

// NewService crea una nueva instancia del servicio de vouchers
func NewService(orderRepo OrderRepository, company CompanyInfo, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		company:   company,
		logger:    logger,
	}
}

// Generate genera el voucher PDF de la reserva dada
func (s *Service) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Generate: order id=%d not found", orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Generate: repository error for order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	pdf, err := s.render(order)
	if err != nil {
		s.logger.Error("Generate: failed to render voucher for order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: Generate - render: %v", ErrInternal, err)
	}

	s.logger.Info("Generate: rendered voucher for order id=%d", orderID)
	return pdf, nil
}

func (s *Service) render(order *domain.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Voucher #%d", order.ID), true)
	pdf.AddPage()

	// Cabecera
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, s.company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Voucher de reserva #%d", order.ID), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Datos del tour
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, order.Tour.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	startDate := "Por confirmar"
	if order.StartDate != nil {
		startDate = order.StartDate.Format(domain.DateFormat)
	}

	writeRow("Region:", order.Tour.Region)
	writeRow("Duracion:", order.Tour.Duration)
	writeRow("Fecha de inicio:", startDate)
	writeRow("Personas:", fmt.Sprintf("%d", order.People))
	writeRow("Total:", "$ "+money.Format(order.TotalPrice))
	writeRow("Estado:", string(order.Status))
	pdf.Ln(4)

	// Datos del cliente
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Datos del cliente", "", 1, "L", false, 0, "")
	writeRow("Nombre:", order.Customer.FullName)
	writeRow("Email:", order.Customer.Email)
	if order.Customer.Phone != "" {
		writeRow("Telefono:", order.Customer.Phone)
	}
	if order.Customer.Nationality != "" {
		writeRow("Nacionalidad:", order.Customer.Nationality)
	}
	pdf.Ln(6)

	// QR con la URL pública de la reserva
	if s.company.PublicBaseURL != "" {
		png, err := qrcode.Encode(s.bookingURL(order.ID), qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode qr: %v", err)
		}

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("booking-qr", 80, pdf.GetY(), 50, 50, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 52)

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Escanea el codigo para ver tu reserva en linea", "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	// Enlace directo de WhatsApp para consultas
	if s.company.WhatsAppPhone != "" {
		text := fmt.Sprintf("Hola! Tengo una consulta sobre mi reserva #%d (%s).", order.ID, order.Tour.Title)
		link := walink.Build(s.company.WhatsAppPhone, text)

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Consultas por WhatsApp: "+link, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("output pdf: %v", err)
	}

	return buf.Bytes(), nil
}

// bookingURL construye la URL pública de seguimiento de la reserva
func (s *Service) bookingURL(orderID int64) string {
	return fmt.Sprintf("%s/reservas/%d", strings.TrimRight(s.company.PublicBaseURL, "/"), orderID)
}
