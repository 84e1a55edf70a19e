package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Exercises a running API end to end: two users, a webhook top-up (sent
// twice to prove idempotency), a product purchase and a debt investment.
const serverAddress = "http://localhost:8080"

func init() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

type client struct {
	http  *http.Client
	token string
}

func (c *client) do(method, path string, body any, headers map[string]string) (int, map[string]any, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, serverAddress+path, rd)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out, nil
}

func (c *client) must(method, path string, body any, headers map[string]string, wantCode int) map[string]any {
	code, out, err := c.do(method, path, body, headers)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("request failed")
	}
	if code != wantCode {
		log.Fatal().Int("code", code).Int("want", wantCode).Str("path", path).Interface("body", out).Msg("unexpected status")
	}
	return out
}

func registerAndLogin(c *client, username string) (userID, token string) {
	c.token = ""
	reg := c.must(http.MethodPost, "/register", map[string]string{
		"username": username, "password": "hunter2hunter2",
	}, nil, http.StatusCreated)
	userID = reg["user_id"].(string)

	login := c.must(http.MethodPost, "/login", map[string]string{
		"username": username, "password": "hunter2hunter2",
	}, nil, http.StatusOK)
	token = login["token"].(string)
	return userID, token
}

func main() {
	c := &client{http: &http.Client{Timeout: 10 * time.Second}}
	run := uuid.New().String()[:8]

	sellerID, sellerToken := registerAndLogin(c, "seller-"+run)
	buyerID, buyerToken := registerAndLogin(c, "buyer-"+run)
	log.Info().Str("seller", sellerID).Str("buyer", buyerID).Msg("users ready")

	// Credit the buyer through the payment webhook, then retry the exact
	// same event: balance must not move on the second delivery.
	event := uuid.New().String()
	credit := map[string]string{"user_id": buyerID, "amount": "2000.00"}
	hdrs := map[string]string{"X-Payment-Event-Id": event}
	first := c.must(http.MethodPost, "/webhooks/payment", credit, hdrs, http.StatusOK)
	replay := c.must(http.MethodPost, "/webhooks/payment", credit, hdrs, http.StatusOK)
	if first["balance_cents"] != replay["balance_cents"] {
		log.Fatal().Interface("first", first).Interface("replay", replay).Msg("webhook credited twice")
	}
	log.Info().Interface("balance", first["balance"]).Msg("webhook credit idempotent")

	// Product purchase
	c.token = sellerToken
	prod := c.must(http.MethodPost, "/products", map[string]string{
		"title": "vintage modem", "price": "49.99",
	}, nil, http.StatusCreated)
	productID := prod["product_id"].(string)

	c.token = buyerToken
	ord := c.must(http.MethodPost, "/products/"+productID+"/buy", nil, nil, http.StatusCreated)
	log.Info().Interface("order", ord["order_id"]).Interface("commission_cents", ord["commission_cents"]).Msg("product bought")

	// Debt investment
	c.token = sellerToken
	lst := c.must(http.MethodPost, "/debts", map[string]any{
		"title": "expand the workshop", "principal": "1000.00", "rate": 0.10,
	}, nil, http.StatusCreated)
	listingID := lst["listing_id"].(string)

	c.token = buyerToken
	pos := c.must(http.MethodPost, "/debts/"+listingID+"/invest", map[string]string{
		"amount": "5.00",
	}, nil, http.StatusCreated)
	log.Info().
		Interface("position", pos["position_id"]).
		Interface("new_rate", pos["listing_rate"]).
		Msg("investment settled")

	wallet := c.must(http.MethodGet, "/wallet", nil, nil, http.StatusOK)
	fmt.Printf("\nsimulation complete; buyer balance %v\n", wallet["balance"])
}
