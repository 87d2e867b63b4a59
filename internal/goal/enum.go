package goal

type CareerGoalStatus string

const (
	CareerGoalStatusActive    CareerGoalStatus = "ACTIVE"
	CareerGoalStatusCompleted CareerGoalStatus = "COMPLETED"
	CareerGoalStatusCanceled  CareerGoalStatus = "CANCELED"
)
