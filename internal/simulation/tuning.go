package simulation

const (
	DefaultAgentRadius      = 20.0
	DefaultObstacleRadius   = 15.0
	DefaultPlacementRetries = 1000

	// Basic robot: whisker straight ahead plus a circular proximity sensor
	RobotSpeed       = 2.0
	RobotSensorRange = 50.0
	WhiskerLength    = 40.0

	ChaserSpeed = 2.0

	BeamSpeed  = 2.0
	BeamCount  = 5
	BeamLength = 100.0
	BeamSpread = 90.0 // degrees, centred on heading

	BumpSpeed         = 3.0
	BumpRecoveryTicks = 30
	BumpJitter        = 30.0 // total width of the deflection jitter, i.e. ±15°

	SmartSpeed              = 2.5
	SmartSensorCount        = 8
	SmartSensorRange        = 80.0
	SmartMemorySectors      = 8
	SmartLearningRate       = 0.1
	SmartCandidateStep      = 15.0 // degrees between evaluated headings
	SmartTurnFraction       = 0.1  // share of the angular gap closed per tick
	SmartClearanceThreshold = 0.5
	SmartCollisionLimit     = 3
	SmartFrameSeconds       = 0.016 // analysis timer advance per tick, ~60fps
	SmartAnalyzeSeconds     = 1.0
	SmartAnalyzeTurn        = 2.0 // degrees rotated per tick while analyzing

	MaxItemSpeed = 5.0
)
