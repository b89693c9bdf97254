package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	testengine "github.com/productscience/liquidstaking/testutil/engine"
	"github.com/productscience/liquidstaking/testutil/sample"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type PublicServerTestSuite struct {
	suite.Suite

	s     *Server
	alice sdk.AccAddress
}

func TestPublicServerTestSuite(t *testing.T) {
	suite.Run(t, new(PublicServerTestSuite))
}

func (s *PublicServerTestSuite) SetupTest() {
	s.alice = sample.Account()
	s.s = NewServer(testengine.NewEngine(s.T(), nil, testengine.Funded{Address: s.alice, Amount: 10_000}))
}

func (s *PublicServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.s.e.ServeHTTP(rec, req)
	return rec
}

func (s *PublicServerTestSuite) stake(amount string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/v1/stake", `{"staker":"`+s.alice.String()+`","amount":"`+amount+`"}`)
}

func (s *PublicServerTestSuite) TestStake() {
	rec := s.stake("1000")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.JSONEq(`{"liquid_amount":"995"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/v1/matching-pool", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var pool types.MatchingLedger
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pool))
	s.Equal("995", pool.TotalStakeAmount.Total.String())

	rec = s.do(http.MethodGet, "/v1/reserves", "")
	s.JSONEq(`{"total_reserves":"5"}`, rec.Body.String())
}

func (s *PublicServerTestSuite) TestStake_Rejected() {
	rec := s.stake("1")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "stake amount is too small")

	rec = s.do(http.MethodPost, "/v1/stake", `{"staker":"nobody","amount":"1000"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/v1/stake", `{"staker":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/v1/matching-pool", "")
	var pool types.MatchingLedger
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pool))
	s.True(pool.TotalStakeAmount.Total.IsZero())
}

func (s *PublicServerTestSuite) TestUnstake_RelayChain() {
	s.Require().Equal(http.StatusOK, s.stake("1000").Code)

	rec := s.do(http.MethodGet, "/v1/unlockings/"+s.alice.String(), "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/v1/unstake", `{"unstaker":"`+s.alice.String()+`","liquid_amount":"500","provider":"relay_chain"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp types.MsgUnstakeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("500", resp.StakingAmount.String())

	rec = s.do(http.MethodGet, "/v1/unlockings/"+s.alice.String(), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var chunks types.UnlockChunks
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &chunks))
	s.Require().Len(chunks, 1)
	s.Equal("500", chunks[0].Value.String())
	s.Equal(resp.TargetEra, chunks[0].Era)
}

func (s *PublicServerTestSuite) TestUnstake_InvalidProvider() {
	s.Require().Equal(http.StatusOK, s.stake("1000").Code)
	rec := s.do(http.MethodPost, "/v1/unstake", `{"unstaker":"`+s.alice.String()+`","liquid_amount":"500","provider":"bank"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *PublicServerTestSuite) TestConvert() {
	rec := s.do(http.MethodGet, "/v1/convert?staking=1000", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"staking":"1000","liquid":"1000"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/v1/convert?liquid=250", "")
	s.JSONEq(`{"staking":"250","liquid":"250"}`, rec.Body.String())

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/convert", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/convert?staking=1&liquid=1", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/convert?staking=abc", "").Code)
}

func (s *PublicServerTestSuite) TestLedgers() {
	rec := s.do(http.MethodGet, "/v1/ledgers", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`null`, rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/v1/ledgers/0", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/ledgers/70000", "").Code)
}

func (s *PublicServerTestSuite) TestEraAndParams() {
	rec := s.do(http.MethodGet, "/v1/era", "")
	s.JSONEq(`{"current_era":0,"era_start_block":0,"is_matched":false}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/v1/params", "")
	var params types.Params
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &params))
	s.Equal(types.DefaultStakingDenom, params.StakingDenom)

	rec = s.do(http.MethodGet, "/v1/exchange-rate", "")
	s.JSONEq(`{"exchange_rate":"1.000000000000000000"}`, rec.Body.String())
}

func (s *PublicServerTestSuite) TestFastUnstake() {
	s.Require().Equal(http.StatusOK, s.stake("1000").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/v1/fast-unstake/"+s.alice.String(), "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/fast-unstake/nobody", "").Code)

	rec := s.do(http.MethodPost, "/v1/unstake", `{"unstaker":"`+s.alice.String()+`","liquid_amount":"300","provider":"matching_pool"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/v1/fast-unstake/"+s.alice.String(), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"account":"`+s.alice.String()+`","amount":"300"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/v1/fast-unstake", "")
	var requests []types.FastUnstakeRequest
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &requests))
	s.Len(requests, 1)
}

func (s *PublicServerTestSuite) TestSummary() {
	s.Require().Equal(http.StatusOK, s.stake("2000").Code)
	rec := s.do(http.MethodGet, "/v1/summary", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var summary types.Summary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &summary))
	s.Equal("1990", summary.LiquidTotalIssued.String())
	s.Equal("10", summary.TotalReserves.String())
	s.Zero(summary.PendingRequests)

	rec = s.do(http.MethodGet, "/v1/requests", "")
	s.JSONEq(`null`, rec.Body.String())
}
