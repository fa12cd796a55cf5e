// Package backend implements ports.OrderStore against the external order
// store's HTTP API. The adapter is fire-and-confirm: one request per
// operation, no retries, no local echo of the store's state beyond mapping
// its responses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the order store over HTTP. Reads and deletes are anonymous;
// the status mutations (update delivery status, accept) carry the bearer
// credential supplied by the CredentialProvider and fail fast with
// Unauthorized when no credential is available, before any request is sent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      ports.CredentialProvider
	logger     *slog.Logger
	metrics    *metrics.BackendMetrics
}

var _ ports.OrderStore = (*Client)(nil)

// NewClient creates a store client for baseURL. metrics may be nil.
func NewClient(
	baseURL string,
	creds ports.CredentialProvider,
	logger *slog.Logger,
	backendMetrics *metrics.BackendMetrics,
) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if creds == nil {
		return nil, errs.NewValueIsRequiredError("creds")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		creds:      creds,
		logger:     logger.With("component", "backend_client"),
		metrics:    backendMetrics,
	}, nil
}

// GetOrders retrieves the order collection matching filter.
func (c *Client) GetOrders(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	target := c.baseURL + "/orders"
	if filter.CustomerEmail != "" {
		target += "?email=" + url.QueryEscape(filter.CustomerEmail)
	}

	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause("orders", err)
	}

	resp, err := c.do(req, "get_orders")
	if err != nil {
		return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause("orders", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause(
			"orders", fmt.Errorf("store responded %d", resp.StatusCode))
	}

	var envelope ordersEnvelopeDTO
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause("orders", err)
	}
	if !envelope.Success {
		return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause(
			"orders", fmt.Errorf("store reported failure"))
	}

	orders := make([]order.Order, 0, len(envelope.Orders))
	for _, dto := range envelope.Orders {
		ord, err := dto.toDomain()
		if err != nil {
			return ports.OrderPage{}, errs.NewFetchFailedErrorWithCause("orders", err)
		}
		orders = append(orders, ord)
	}

	return ports.OrderPage{
		Orders:      orders,
		TotalOrders: envelope.TotalOrders,
		TotalAmount: envelope.TotalAmount,
	}, nil
}

// GetOrder retrieves a single order by its store-issued identifier.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	target := c.baseURL + "/orders/" + url.PathEscape(orderID)
	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errs.NewFetchFailedErrorWithCause("order:"+orderID, err)
	}

	resp, err := c.do(req, "get_order")
	if err != nil {
		return nil, errs.NewFetchFailedErrorWithCause("order:"+orderID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	case resp.StatusCode != http.StatusOK:
		return nil, errs.NewFetchFailedErrorWithCause(
			"order:"+orderID, fmt.Errorf("store responded %d", resp.StatusCode))
	}

	var envelope orderEnvelopeDTO
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errs.NewFetchFailedErrorWithCause("order:"+orderID, err)
	}
	if !envelope.Success {
		return nil, errs.NewFetchFailedErrorWithCause(
			"order:"+orderID, fmt.Errorf("store reported failure"))
	}

	ord, err := envelope.Order.toDomain()
	if err != nil {
		return nil, errs.NewFetchFailedErrorWithCause("order:"+orderID, err)
	}
	return &ord, nil
}

// UpdateDeliveryStatus requests the store to set the order's delivery status.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, orderID string, status order.DeliveryStatus) error {
	const op = "update_delivery_status"

	body, err := json.Marshal(updateDeliveryStatusRequestDTO{DeliveryStatus: status.String()})
	if err != nil {
		return errs.NewTransitionFailedErrorWithCause(op, orderID, err)
	}

	target := c.baseURL + "/delivery-status/" + url.PathEscape(orderID)
	return c.mutate(ctx, op, http.MethodPut, target, orderID, bytes.NewReader(body))
}

// AcceptOrder requests the store to mark the order accepted.
func (c *Client) AcceptOrder(ctx context.Context, orderID string) error {
	target := c.baseURL + "/accept/" + url.PathEscape(orderID)
	return c.mutate(ctx, "accept_order", http.MethodPut, target, orderID, nil)
}

// DeleteOrder requests removal of the order. The store accepts the delete
// without a bearer credential, so no credential gate applies here; there is
// no precondition beyond existence, which the store itself reports.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	const op = "delete_order"

	target := c.baseURL + "/orders/" + url.PathEscape(orderID)
	req, err := c.newRequest(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return errs.NewTransitionFailedErrorWithCause(op, orderID, err)
	}

	resp, err := c.do(req, op)
	if err != nil {
		return errs.NewTransitionFailedErrorWithCause(op, orderID, err)
	}
	defer resp.Body.Close()

	return mapMutationStatus(op, orderID, resp.StatusCode)
}

// mutate issues one authenticated mutation request and maps the store's
// response to the mutation error taxonomy. No request is sent without a
// credential.
func (c *Client) mutate(ctx context.Context, op, method, target, orderID string, body *bytes.Reader) error {
	token, err := c.creds.AccessToken(ctx)
	if err != nil {
		return errs.NewUnauthorizedErrorWithCause(op, err)
	}
	if token == "" {
		return errs.NewUnauthorizedError(op)
	}

	var req *http.Request
	if body != nil {
		req, err = c.newRequest(ctx, method, target, body)
	} else {
		req, err = c.newRequest(ctx, method, target, nil)
	}
	if err != nil {
		return errs.NewTransitionFailedErrorWithCause(op, orderID, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do(req, op)
	if err != nil {
		return errs.NewTransitionFailedErrorWithCause(op, orderID, err)
	}
	defer resp.Body.Close()

	return mapMutationStatus(op, orderID, resp.StatusCode)
}

// mapMutationStatus translates the store's response status on a mutation into
// the mutation error taxonomy.
func mapMutationStatus(op, orderID string, statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("orderId", orderID)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errs.NewUnauthorizedErrorWithCause(op,
			fmt.Errorf("store responded %d", statusCode))
	default:
		return errs.NewTransitionFailedErrorWithCause(op, orderID,
			fmt.Errorf("store responded %d", statusCode))
	}
}

func (c *Client) newRequest(ctx context.Context, method, target string, body *bytes.Reader) (*http.Request, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, target, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target, nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and records request telemetry. Transport failures
// are logged here; response-status mapping is the caller's concern.
func (c *Client) do(req *http.Request, op string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		c.metrics.Observe(op, "error", elapsed)
		c.logger.WarnContext(req.Context(), "store request failed",
			"op", op, "url", req.URL.String(), "error", err)
		return nil, err
	}

	c.metrics.Observe(op, strconv.Itoa(resp.StatusCode), elapsed)
	return resp, nil
}
