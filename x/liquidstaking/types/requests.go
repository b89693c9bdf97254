package types

import (
	"encoding/json"
	"fmt"
	"strings"

	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/math"
)

type RequestKind string

const (
	RequestKindBond             RequestKind = "bond"
	RequestKindBondExtra        RequestKind = "bond_extra"
	RequestKindUnbond           RequestKind = "unbond"
	RequestKindRebond           RequestKind = "rebond"
	RequestKindWithdrawUnbonded RequestKind = "withdraw_unbonded"
	RequestKindNominate         RequestKind = "nominate"
)

// RemoteRequest is an operation submitted to the remote staking system and
// awaiting confirmation. Implementations are the *Request types below.
type RemoteRequest interface {
	Kind() RequestKind
	DerivativeIndex() uint16
	String() string
	isRemoteRequest()
}

type BondRequest struct {
	Index  uint16   `json:"index"`
	Amount math.Int `json:"amount"`
}

type BondExtraRequest struct {
	Index  uint16   `json:"index"`
	Amount math.Int `json:"amount"`
}

type UnbondRequest struct {
	Index  uint16   `json:"index"`
	Amount math.Int `json:"amount"`
}

type RebondRequest struct {
	Index  uint16   `json:"index"`
	Amount math.Int `json:"amount"`
}

type WithdrawUnbondedRequest struct {
	Index            uint16 `json:"index"`
	NumSlashingSpans uint32 `json:"num_slashing_spans"`
}

type NominateRequest struct {
	Index   uint16   `json:"index"`
	Targets []string `json:"targets"`
}

func (BondRequest) Kind() RequestKind             { return RequestKindBond }
func (BondExtraRequest) Kind() RequestKind        { return RequestKindBondExtra }
func (UnbondRequest) Kind() RequestKind           { return RequestKindUnbond }
func (RebondRequest) Kind() RequestKind           { return RequestKindRebond }
func (WithdrawUnbondedRequest) Kind() RequestKind { return RequestKindWithdrawUnbonded }
func (NominateRequest) Kind() RequestKind         { return RequestKindNominate }

func (r BondRequest) DerivativeIndex() uint16             { return r.Index }
func (r BondExtraRequest) DerivativeIndex() uint16        { return r.Index }
func (r UnbondRequest) DerivativeIndex() uint16           { return r.Index }
func (r RebondRequest) DerivativeIndex() uint16           { return r.Index }
func (r WithdrawUnbondedRequest) DerivativeIndex() uint16 { return r.Index }
func (r NominateRequest) DerivativeIndex() uint16         { return r.Index }

func (r BondRequest) String() string {
	return fmt.Sprintf("bond{index: %d, amount: %s}", r.Index, r.Amount)
}
func (r BondExtraRequest) String() string {
	return fmt.Sprintf("bond_extra{index: %d, amount: %s}", r.Index, r.Amount)
}
func (r UnbondRequest) String() string {
	return fmt.Sprintf("unbond{index: %d, amount: %s}", r.Index, r.Amount)
}
func (r RebondRequest) String() string {
	return fmt.Sprintf("rebond{index: %d, amount: %s}", r.Index, r.Amount)
}
func (r WithdrawUnbondedRequest) String() string {
	return fmt.Sprintf("withdraw_unbonded{index: %d, num_slashing_spans: %d}", r.Index, r.NumSlashingSpans)
}
func (r NominateRequest) String() string {
	return fmt.Sprintf("nominate{index: %d, targets: [%s]}", r.Index, strings.Join(r.Targets, ","))
}

func (BondRequest) isRemoteRequest()             {}
func (BondExtraRequest) isRemoteRequest()        {}
func (UnbondRequest) isRemoteRequest()           {}
func (RebondRequest) isRemoteRequest()           {}
func (WithdrawUnbondedRequest) isRemoteRequest() {}
func (NominateRequest) isRemoteRequest()         {}

// RequestAmount returns the amount moved by a request, zero for
// withdraw_unbonded and nominate.
func RequestAmount(req RemoteRequest) math.Int {
	switch r := req.(type) {
	case BondRequest:
		return r.Amount
	case BondExtraRequest:
		return r.Amount
	case UnbondRequest:
		return r.Amount
	case RebondRequest:
		return r.Amount
	default:
		return math.ZeroInt()
	}
}

// Outcome is the result reported by the transport for a correlation id.
type Outcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func SuccessOutcome() Outcome {
	return Outcome{Success: true}
}

func FailureOutcome(reason string) Outcome {
	return Outcome{Success: false, Error: reason}
}

type requestEnvelope struct {
	Kind    RequestKind     `json:"kind"`
	Request json.RawMessage `json:"request"`
}

// MarshalRemoteRequest encodes a request tagged with its kind.
func MarshalRemoteRequest(req RemoteRequest) ([]byte, error) {
	if req == nil {
		return nil, ErrUnknownRequestKind.Wrap("nil request")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(requestEnvelope{Kind: req.Kind(), Request: body})
}

func UnmarshalRemoteRequest(bz []byte) (RemoteRequest, error) {
	var env requestEnvelope
	if err := json.Unmarshal(bz, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case RequestKindBond:
		return decodeRequest[BondRequest](env.Request)
	case RequestKindBondExtra:
		return decodeRequest[BondExtraRequest](env.Request)
	case RequestKindUnbond:
		return decodeRequest[UnbondRequest](env.Request)
	case RequestKindRebond:
		return decodeRequest[RebondRequest](env.Request)
	case RequestKindWithdrawUnbonded:
		return decodeRequest[WithdrawUnbondedRequest](env.Request)
	case RequestKindNominate:
		return decodeRequest[NominateRequest](env.Request)
	default:
		return nil, ErrUnknownRequestKind.Wrapf("kind %q", env.Kind)
	}
}

func decodeRequest[T RemoteRequest](bz []byte) (RemoteRequest, error) {
	var req T
	if err := json.Unmarshal(bz, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// RemoteRequestValue is the collections codec for pending requests.
var RemoteRequestValue collcodec.ValueCodec[RemoteRequest] = remoteRequestCodec{}

type remoteRequestCodec struct{}

func (remoteRequestCodec) Encode(value RemoteRequest) ([]byte, error) {
	return MarshalRemoteRequest(value)
}

func (remoteRequestCodec) Decode(b []byte) (RemoteRequest, error) {
	return UnmarshalRemoteRequest(b)
}

func (c remoteRequestCodec) EncodeJSON(value RemoteRequest) ([]byte, error) {
	return c.Encode(value)
}

func (c remoteRequestCodec) DecodeJSON(b []byte) (RemoteRequest, error) {
	return c.Decode(b)
}

func (remoteRequestCodec) Stringify(value RemoteRequest) string {
	return value.String()
}

func (remoteRequestCodec) ValueType() string {
	return "liquidstaking/remote_request"
}

// PendingRequest pairs a request with its correlation id, for genesis and queries.
type PendingRequest struct {
	CorrelationID uint64        `json:"correlation_id"`
	Request       RemoteRequest `json:"-"`
}

type pendingRequestJSON struct {
	CorrelationID uint64          `json:"correlation_id"`
	Request       json.RawMessage `json:"request"`
}

func (p PendingRequest) MarshalJSON() ([]byte, error) {
	bz, err := MarshalRemoteRequest(p.Request)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pendingRequestJSON{CorrelationID: p.CorrelationID, Request: bz})
}

func (p *PendingRequest) UnmarshalJSON(bz []byte) error {
	var raw pendingRequestJSON
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}
	req, err := UnmarshalRemoteRequest(raw.Request)
	if err != nil {
		return err
	}
	p.CorrelationID = raw.CorrelationID
	p.Request = req
	return nil
}
