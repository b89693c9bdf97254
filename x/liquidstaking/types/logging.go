package types

type SubSystem uint8

const (
	Staking SubSystem = iota
	Matching
	Ledgers
	Era
	Requests
	FastUnstake
	Claims
	Proofs
	Reserves
	Loans
	Genesis
	System
	Config
	Server
	Messages
	Outbox
	Journal
	Metrics
	Testing = 255
)

func (s SubSystem) String() string {
	switch s {
	case Staking:
		return "Staking"
	case Matching:
		return "Matching"
	case Ledgers:
		return "Ledgers"
	case Era:
		return "Era"
	case Requests:
		return "Requests"
	case FastUnstake:
		return "FastUnstake"
	case Claims:
		return "Claims"
	case Proofs:
		return "Proofs"
	case Reserves:
		return "Reserves"
	case Loans:
		return "Loans"
	case Genesis:
		return "Genesis"
	case System:
		return "System"
	case Config:
		return "Config"
	case Server:
		return "Server"
	case Messages:
		return "Messages"
	case Outbox:
		return "Outbox"
	case Journal:
		return "Journal"
	case Metrics:
		return "Metrics"
	case Testing:
		return "Testing"
	default:
		return "Unknown"
	}
}
