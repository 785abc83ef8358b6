package bowler

//go:generate mockgen -destination=mock/mock_bowler.go -package=mockbowler -source=bowler.go

// Bowler delivers balls at a rack of pins.
// This allows us to inject different implementations for testing
type Bowler interface {
	// Bowl rolls one ball at the standing pins and returns how many fell
	Bowl(standing int) (int, error)
}
