package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Participants() ParticipantRepository
	Orders() OrderRepository
	Balances() BalanceRepository
	Payouts() PayoutRepository
}
