package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"expense_tracker/internal/core/domain"
	"expense_tracker/internal/core/filter"
	"expense_tracker/internal/logger"
	"expense_tracker/pkg/ledger"
)

// Operation names used for request accounting.
const (
	opList        = "list"
	opAdd         = "add"
	opUndo        = "undo"
	opGetFilter   = "get_filter"
	opSetFilter   = "set_filter"
	opApplyFilter = "apply_filter"
)

// Request outcomes used for request accounting.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// SnapshotProvider gives access to the rendered ledger.
type SnapshotProvider interface {
	Snapshot() ledger.Snapshot
	ClearMessage()
}

// RequestObserver records the outcome of API calls.
type RequestObserver interface {
	ObserveRequest(operation, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveRequest(string, string) {}

// HTTPHandler handles incoming HTTP requests for the ledger API.
type HTTPHandler struct {
	service  ledger.Ledger
	view     SnapshotProvider
	observer RequestObserver
	logger   logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary dependencies. observer may be nil.
func NewHTTPHandler(
	service ledger.Ledger,
	view SnapshotProvider,
	observer RequestObserver,
	appLogger logger.AppLogger,
) (*HTTPHandler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil for HTTPHandler")
	}
	if view == nil {
		return nil, errors.New("view cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &HTTPHandler{
		service:  service,
		view:     view,
		observer: observer,
		logger:   appLogger.WithComponent("restapi"),
	}, nil
}

// HandleListTransactions handles requests to GET /transactions
func (h *HTTPHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	snapshot := h.view.Snapshot()
	h.observer.ObserveRequest(opList, outcomeOK)
	respondWithJSON(w, http.StatusOK, LedgerResponse{Snapshot: snapshot}, requestLogger)
}

// HandleAddTransaction handles requests to POST /transactions
func (h *HTTPHandler) HandleAddTransaction(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)
	defer closeBody(r, requestLogger)

	var req AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.observer.ObserveRequest(opAdd, outcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}
	if req.Amount == nil {
		h.observer.ObserveRequest(opAdd, outcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Amount is required", requestLogger)
		return
	}

	requestLogger = requestLogger.With(logger.FieldAmount, *req.Amount, logger.FieldCategory, req.Category)

	if !h.service.AddTransaction(*req.Amount, req.Category) {
		h.observer.ObserveRequest(opAdd, outcomeRejected)
		respondWithError(w, http.StatusUnprocessableEntity, fmt.Sprintf(
			"Transaction rejected: amount must be greater than 0 and at most %v, category must be one of: %s",
			domain.MaxAmount, strings.Join(domain.Categories(), ", "),
		), requestLogger)
		return
	}

	h.observer.ObserveRequest(opAdd, outcomeOK)
	respondWithJSON(w, http.StatusCreated, LedgerResponse{Snapshot: h.view.Snapshot()}, requestLogger)
}

// HandleUndoTransaction handles requests to DELETE /transactions/{row}
func (h *HTTPHandler) HandleUndoTransaction(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	rawRow := r.PathValue("row")
	requestLogger = requestLogger.With(logger.FieldRow, rawRow)

	row, err := strconv.Atoi(rawRow)
	if err != nil {
		h.observer.ObserveRequest(opUndo, outcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Row must be an integer", requestLogger)
		return
	}

	if !h.service.UndoTransaction(row) {
		h.observer.ObserveRequest(opUndo, outcomeRejected)
		respondWithError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Row %d does not exist", row), requestLogger)
		return
	}

	h.observer.ObserveRequest(opUndo, outcomeOK)
	respondWithJSON(w, http.StatusOK, LedgerResponse{Snapshot: h.view.Snapshot()}, requestLogger)
}

// HandleGetFilter handles requests to GET /filter
func (h *HTTPHandler) HandleGetFilter(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	h.observer.ObserveRequest(opGetFilter, outcomeOK)
	respondWithJSON(w, http.StatusOK, toFilterResponse(h.service.Filter()), requestLogger)
}

// HandleSetFilter handles requests to PUT /filter
func (h *HTTPHandler) HandleSetFilter(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)
	defer closeBody(r, requestLogger)

	var req SetFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.observer.ObserveRequest(opSetFilter, outcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	f, err := toFilter(req)
	if err != nil {
		h.observer.ObserveRequest(opSetFilter, outcomeInvalid)
		if errors.Is(err, domain.ErrInvalidArgument) {
			requestLogger.Warn("SetFilter validation failed", logger.FieldError, err)
		}
		respondWithError(w, http.StatusBadRequest, err.Error(), requestLogger)
		return
	}

	h.service.SetFilter(f)
	h.observer.ObserveRequest(opSetFilter, outcomeOK)
	respondWithJSON(w, http.StatusOK, toFilterResponse(f), requestLogger)
}

// HandleApplyFilter handles requests to POST /filter/apply
func (h *HTTPHandler) HandleApplyFilter(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	h.view.ClearMessage()
	applied, err := h.service.ApplyFilter()
	if err != nil {
		requestLogger.Error("Error applying filter", logger.FieldError, err)
		h.observer.ObserveRequest(opApplyFilter, outcomeError)
		respondWithError(w, http.StatusInternalServerError, "Failed to apply filter", requestLogger)
		return
	}

	snapshot := h.view.Snapshot()
	outcome := outcomeOK
	if !applied {
		outcome = outcomeRejected
	}
	h.observer.ObserveRequest(opApplyFilter, outcome)
	respondWithJSON(w, http.StatusOK, ApplyFilterResponse{
		Applied:        applied,
		Message:        snapshot.Message,
		MatchedIndices: snapshot.MatchedIndices,
	}, requestLogger)
}

// HandleListCategories handles requests to GET /categories
func (h *HTTPHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, CategoriesResponse{Categories: domain.Categories()}, h.requestLogger(r))
}

func (h *HTTPHandler) requestLogger(r *http.Request) logger.AppLogger {
	return h.logger.With("method", r.Method, "path", r.URL.Path)
}

// toFilter builds the filter described by req. A "none" type yields a nil filter.
func toFilter(req SetFilterRequest) (filter.TransactionFilter, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case FilterTypeAmount:
		if req.Amount == nil {
			return nil, errors.New("amount is required for an amount filter")
		}
		return filter.NewAmountFilter(*req.Amount)
	case FilterTypeCategory:
		return filter.NewCategoryFilter(req.Category)
	case FilterTypeNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown filter type '%s', must be one of: %s, %s, %s",
			req.Type, FilterTypeAmount, FilterTypeCategory, FilterTypeNone)
	}
}

func toFilterResponse(f filter.TransactionFilter) FilterResponse {
	switch typed := f.(type) {
	case *filter.AmountFilter:
		amount := typed.Amount()
		return FilterResponse{Type: FilterTypeAmount, Amount: &amount}
	case *filter.CategoryFilter:
		return FilterResponse{Type: FilterTypeCategory, Category: typed.Category()}
	default:
		return FilterResponse{Type: FilterTypeNone}
	}
}

func closeBody(r *http.Request, l logger.AppLogger) {
	if err := r.Body.Close(); err != nil {
		l.Warn("Failed to close request body", logger.FieldError, err)
	}
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	if l == nil {
		serviceLogger := logger.NewSlogAdapter(slog.Default())
		serviceLogger.Warn("Responding with error (fallback logger)", "http_code", code, "message", message)
	} else {
		l.Warn("Responding with error", "http_code", code, "message", message)
	}
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}

	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response",
			logger.FieldError, err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	n, writeErr := w.Write(response)
	if writeErr != nil {
		l.Error("Error writing response body", logger.FieldError, writeErr, "bytes_written", n)
	}
}
