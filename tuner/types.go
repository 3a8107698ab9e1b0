package tuner

// Sample is one encoded position visited during a game.
type Sample struct {
	Input []float64
}

// Outcome targets for end-of-game training, from White's point of view.
const (
	TargetWhiteWin = 1.0
	TargetBlackWin = 0.0
	TargetDraw     = 0.5
)

type TrainConfig struct {
	LR        float64 `yaml:"lr"`
	Optimizer string  `yaml:"optimizer"` // "sgd" or "adam"
	Epochs    int     `yaml:"epochs"`    // passes over one game's samples
}

// DefaultTrainConfig mirrors the single averaged SGD step per game.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{LR: 0.1, Optimizer: "sgd", Epochs: 1}
}
