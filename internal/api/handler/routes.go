package handler

import (
	"net/http"

	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/api/handler/router"
	"github.com/vfg2006/home-services-api/internal/usecases/authenticating"
	"github.com/vfg2006/home-services-api/internal/usecases/booking"
	"github.com/vfg2006/home-services-api/internal/usecases/dashboarding"
	"github.com/vfg2006/home-services-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/extended",
			Method:      http.MethodGet,
			Handler:     GetExtendedDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
	}
}

func Customers(repo repository.CustomerRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCustomer(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Vendors(repo repository.VendorRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vendors",
			Method:      http.MethodGet,
			Handler:     ListVendors(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/vendors",
			Method:      http.MethodPost,
			Handler:     CreateVendor(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/vendors/:id",
			Method:      http.MethodGet,
			Handler:     GetVendor(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/vendors/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVendor(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/vendors/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteVendor(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Services(repo repository.ServiceRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateService(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodGet,
			Handler:     GetService(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodPut,
			Handler:     UpdateService(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteService(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Bookings(service booking.BookingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bookings",
			Method:      http.MethodGet,
			Handler:     ListBookings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/bookings",
			Method:      http.MethodPost,
			Handler:     CreateBooking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bookings/:id",
			Method:      http.MethodGet,
			Handler:     GetBooking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bookings/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBooking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/bookings/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateBookingStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
	}
}

func Payments(repo repository.PaymentRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/payments",
			Method:      http.MethodGet,
			Handler:     ListBookingPayments(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/payments",
			Method:      http.MethodPost,
			Handler:     CreatePayment(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/payments/:id",
			Method:      http.MethodGet,
			Handler:     GetPayment(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/payments/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdatePaymentStatus(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Inspections(repo repository.InspectionRepository, bookingRepo repository.BookingRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/inspections",
			Method:      http.MethodGet,
			Handler:     ListBookingInspections(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/inspections",
			Method:      http.MethodPost,
			Handler:     CreateInspection(repo, bookingRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/inspections/:id",
			Method:      http.MethodGet,
			Handler:     GetInspection(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/inspections/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInspection(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRM()},
		},
		{
			Path:        "/v1/inspections/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInspection(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
