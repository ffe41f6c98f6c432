package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/securities_vault/internal/adapters/gateway/memory"
	"github.com/SscSPs/securities_vault/internal/adapters/oracle/static"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/SscSPs/securities_vault/internal/handlers"
	"github.com/SscSPs/securities_vault/internal/platform/config"
	"github.com/SscSPs/securities_vault/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	jwtSecret = "handler-test-secret"
	jwtIssuer = "securities-vault-test"

	admin     domain.Address = "0x00000000000000000000000000000000000000a1"
	officer   domain.Address = "0x00000000000000000000000000000000000000a3"
	regulator domain.Address = "0x00000000000000000000000000000000000000a4"
	custody   domain.Address = "0x00000000000000000000000000000000000000c0"
	alice     domain.Address = "0x0000000000000000000000000000000000000001"
	bob       domain.Address = "0x0000000000000000000000000000000000000002"
	usdc      domain.AssetID = "0x000000000000000000000000000000000000aaaa"
	single    domain.AssetID = "0x000000000000000000000000000000000000cccc"
	token     domain.AssetID = "0x00000000000000000000000000000000000000f0"
)

type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	gateway *memory.TokenGateway
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          jwtSecret,
		JWTIssuer:          jwtIssuer,
		BootstrapAdmin:     admin,
		CustodyAddress:     custody,
		SecurityTokenAsset: token,
		DefaultPartition:   domain.DefaultPartition,
		VaultAssets:        []domain.DepositLimitUpdate{{Asset: usdc, Limit: decimal.NewFromInt(1000)}},
		SingleVaultAsset:   single,
		SingleVaultLimit:   decimal.NewFromInt(50),
	}
	s.gateway = memory.NewTokenGateway(custody)

	container, _, err := services.NewServiceContainer(context.Background(), cfg, services.Dependencies{
		Gateway: s.gateway,
		Oracle:  static.PriceOracle{usdc: decimal.NewFromInt(3)},
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, container, prometheus.NewRegistry())
}

func (s *HandlersTestSuite) bearer(caller domain.Address) string {
	token, err := utils.GenerateJWT(caller, jwtSecret, time.Hour, jwtIssuer)
	s.Require().NoError(err)
	return "Bearer " + token
}

func (s *HandlersTestSuite) do(method, path string, caller domain.Address, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("Authorization", s.bearer(caller))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) grant(role string, account domain.Address) {
	w := s.do(http.MethodPost, "/api/v1/roles/grant", admin, gin.H{"role": role, "account": account})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlersTestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestAuthentication() {
	w := s.do(http.MethodGet, "/api/v1/vault", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vault", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)

	expired, err := utils.GenerateJWT(alice, jwtSecret, -time.Minute, jwtIssuer)
	s.Require().NoError(err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/vault", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Token has expired")
}

func (s *HandlersTestSuite) TestDepositFlowAndStatusMapping() {
	w := s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": usdc, "amount": "10"})
	s.Equal(http.StatusForbidden, w.Code, "callers without the investor role")

	s.grant("INVESTOR", alice)
	s.gateway.Mint(usdc, alice, decimal.NewFromInt(2000))
	s.gateway.Approve(usdc, alice, custody, decimal.NewFromInt(2000))

	w = s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": usdc, "amount": "400"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var balance dto.BalanceResponse
	s.decode(w, &balance)
	s.True(balance.Balance.Equal(decimal.NewFromInt(400)))
	s.Equal(alice, balance.Account)

	w = s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": usdc, "amount": "601"})
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	var errBody map[string]string
	s.decode(w, &errBody)
	s.Equal("limit_exceeded", errBody["reason"])

	w = s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": "not-an-address", "amount": "1"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": usdc, "amount": "0"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/vault/pause", admin, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodPost, "/api/v1/vault/withdraw", alice, gin.H{"asset": usdc, "amount": "1"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/v1/vault/emergency-withdraw", alice, gin.H{"asset": usdc})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &balance)
	s.True(balance.Balance.Equal(decimal.NewFromInt(400)))

	w = s.do(http.MethodPost, "/api/v1/vault/emergency-withdraw", alice, gin.H{"asset": usdc})
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *HandlersTestSuite) TestGatewayFailureIsBadGateway() {
	s.grant("INVESTOR", alice)
	w := s.do(http.MethodPost, "/api/v1/vault/deposit", alice, gin.H{"asset": usdc, "amount": "5"})
	s.Equal(http.StatusBadGateway, w.Code, "nothing approved")

	var errBody map[string]string
	s.decode(w, &errBody)
	s.Equal("gateway", errBody["reason"])
}

func (s *HandlersTestSuite) TestVaultStateAndValuation() {
	w := s.do(http.MethodGet, "/api/v1/vault", alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var state dto.VaultStateResponse
	s.decode(w, &state)
	s.Equal(domain.Active, state.State)
	s.Len(state.Positions, 1)

	w = s.do(http.MethodGet, "/api/v1/vault/valuation", alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var valuation dto.ValuationResponse
	s.decode(w, &valuation)
	s.True(valuation.TotalValueLocked.IsZero())
}

func (s *HandlersTestSuite) TestBatchLimitsAreAtomic() {
	w := s.do(http.MethodPut, "/api/v1/vault/limits/batch", admin, gin.H{
		"assets": []string{usdc.String(), domain.ZeroAddress.String()},
		"limits": []string{"5", "6"},
	})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/vault", alice, nil)
	var state dto.VaultStateResponse
	s.decode(w, &state)
	s.Require().Len(state.Positions, 1)
	s.True(state.Positions[0].DepositLimit.Equal(decimal.NewFromInt(1000)))
}

func (s *HandlersTestSuite) TestTokenCompliance() {
	s.grant("COMPLIANCE", officer)
	s.grant("REGULATOR", regulator)

	for _, account := range []domain.Address{alice, bob} {
		w := s.do(http.MethodPost, "/api/v1/token/whitelist", officer, gin.H{"account": account})
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
	}
	w := s.do(http.MethodPost, "/api/v1/token/issue", officer, gin.H{"to": alice, "amount": "40"})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/token/can-transfer?from="+alice.String()+"&to="+bob.String()+"&amount=10", alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var check dto.CanTransferResponse
	s.decode(w, &check)
	s.True(check.Allowed)

	w = s.do(http.MethodPut, "/api/v1/token/partitions", officer, gin.H{"account": bob, "partition": "has space"})
	s.Equal(http.StatusBadRequest, w.Code, "partition labels are validated at binding")

	w = s.do(http.MethodPut, "/api/v1/token/partitions", officer, gin.H{"account": bob, "partition": "reg-s"})
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/api/v1/token/transfer", alice, gin.H{"to": bob, "amount": "10"})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPost, "/api/v1/token/force-transfer", regulator, gin.H{"from": alice, "to": bob, "amount": "15", "reason": "Bypass"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var event domain.AuditEvent
	s.decode(w, &event)
	s.Equal(domain.ActionForcedTransfer, event.Action)
	s.Equal("Bypass", event.Reason)

	w = s.do(http.MethodGet, "/api/v1/token/balances/"+bob.String(), alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var balance dto.BalanceResponse
	s.decode(w, &balance)
	s.True(balance.Balance.Equal(decimal.NewFromInt(15)))
}

func (s *HandlersTestSuite) TestDocuments() {
	w := s.do(http.MethodPut, "/api/v1/documents/prospectus", admin, gin.H{"uri": "ipfs://doc", "content": "abc"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var doc domain.Document
	s.decode(w, &doc)
	s.Equal(utils.DocumentHash([]byte("abc")), doc.Hash)

	w = s.do(http.MethodPut, "/api/v1/documents/terms", admin, gin.H{"uri": "ipfs://terms"})
	s.Equal(http.StatusBadRequest, w.Code, "a hash or content is required")

	w = s.do(http.MethodGet, "/api/v1/documents/prospectus", alice, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/documents/prospectus", alice, nil)
	s.Equal(http.StatusForbidden, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/documents/prospectus", admin, nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodGet, "/api/v1/documents/prospectus", alice, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestRolesAndAudit() {
	w := s.do(http.MethodGet, "/api/v1/roles/me", admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var roles dto.CallerRolesResponse
	s.decode(w, &roles)
	s.Equal([]domain.Role{domain.RoleDefaultAdmin, domain.RoleAdmin}, roles.Roles)

	w = s.do(http.MethodGet, "/api/v1/roles/NOT_A_ROLE", admin, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/audit/events", alice, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.grant("AUDITOR", alice)
	w = s.do(http.MethodGet, "/api/v1/audit/events?limit=2", alice, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var page dto.ListAuditEventsResponse
	s.decode(w, &page)
	s.Len(page.Events, 2)
	s.NotNil(page.NextToken)

	w = s.do(http.MethodGet, "/api/v1/audit/history/"+alice.String(), alice, nil)
	s.Equal(http.StatusNotFound, w.Code, "no audit store configured")
}

func (s *HandlersTestSuite) TestSingleVault() {
	s.grant("INVESTOR", alice)
	s.gateway.Mint(single, alice, decimal.NewFromInt(100))
	s.gateway.Approve(single, alice, custody, decimal.NewFromInt(100))

	w := s.do(http.MethodPost, "/api/v1/single-vault/deposit", alice, gin.H{"amount": "50"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/v1/single-vault/deposit", alice, gin.H{"amount": "1"})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodGet, "/api/v1/single-vault", alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var state dto.SingleVaultStateResponse
	s.decode(w, &state)
	s.Equal(single, state.Asset)
	s.True(state.TotalDeposited.Equal(decimal.NewFromInt(50)))
}
