package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/julienschmidt/httprouter"
	"net"
	"net/http"
	"net/url"
	"paysera/config"
	"paysera/entity"
	"paysera/services"
	"strconv"
)

const (
	payRedirect     = "/pay"
	paymentCallback = "/callback"
	metricsPath     = "/metrics"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
	metrics    *Metrics
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf:    conf,
		logger:  NewLogger("server", false, nil),
		metrics: NewMetrics(),
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.GET(payRedirect, s.payRedirect)
	router.GET(paymentCallback, s.paymentCallback)
	router.POST(paymentCallback, s.paymentCallback)
	router.Handler(http.MethodGet, metricsPath, s.metrics.Handler())
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if s.payments == nil {
		return fmt.Errorf("payments service not set")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) payRedirect(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	query := r.URL.Query()
	request, err := readPaymentRequest(query)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] pay: %v", reqID, err))
		s.metrics.PaymentUrl("invalid")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.conf != nil && s.conf.Merchant.TestMode {
		request.TestMode = true
	}

	payUrl, err := s.payments.BuildPaymentUrl(request)
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			s.logger.Warn(fmt.Sprintf("[%s] pay: %v", reqID, err))
			s.metrics.PaymentUrl("invalid")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error(fmt.Sprintf("[%s] pay: build url", reqID), err)
		s.metrics.PaymentUrl("error")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.metrics.PaymentUrl("ok")
	s.logger.Info(fmt.Sprintf("[%s] payment url: amount %d %s; email %s; test %v",
		reqID, request.Amount, request.Currency, secret(request.Email), request.TestMode))

	if query.Get("format") == "json" {
		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(map[string]string{"url": payUrl}); err != nil {
			s.logger.Error(fmt.Sprintf("[%s] pay: encode response", reqID), err)
		}
		return
	}
	http.Redirect(w, r, payUrl, http.StatusFound)
}

func (s *Server) paymentCallback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	if err := r.ParseForm(); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] callback: parse form: %v", reqID, err))
		s.metrics.Callback("malformed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payload := make(map[string]string, len(r.Form))
	for key, values := range r.Form {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	valid, err := s.payments.ValidateCallback(payload)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] callback: %v", reqID, err))
		s.metrics.Callback("malformed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !valid {
		s.logger.Warn(fmt.Sprintf("[%s] callback: invalid signature; order %s", reqID, payload["orderid"]))
		s.metrics.Callback("invalid_signature")
		w.WriteHeader(http.StatusForbidden)
		return
	}

	s.metrics.Callback("valid")
	s.logger.Info(fmt.Sprintf("[%s] callback: order %s; status %s; amount %s %s",
		reqID, payload["orderid"], payload["status"], payload["amount"], payload["currency"]))
	// the gateway treats any other body as a failed delivery
	_, _ = w.Write([]byte("OK"))
}

func readPaymentRequest(query url.Values) (*entity.PaymentRequest, error) {
	request := &entity.PaymentRequest{
		Currency:  query.Get("currency"),
		FirstName: query.Get("first_name"),
		LastName:  query.Get("last_name"),
		Email:     query.Get("email"),
		OrderId:   query.Get("order_id"),
	}
	if value := query.Get("amount"); value != "" {
		amount, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, &entity.ValidationError{Field: "amount", Reason: "must be an integer number of cents"}
		}
		request.Amount = amount
	}
	if value := query.Get("test"); value != "" {
		testMode, err := strconv.ParseBool(value)
		if err != nil {
			return nil, &entity.ValidationError{Field: "test", Reason: "must be a boolean"}
		}
		request.TestMode = testMode
	}
	return request, nil
}
