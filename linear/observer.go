package linear

// EpochStats は1エポック終了時の統計
type EpochStats struct {
	ModelID string
	Epoch   int     // 1始まり
	Samples int     // 更新回数
	Loss    float64 // 更新前誤差の二乗平均
	Weight  float64
	Bias    float64
}

// TrainingObserver はエポック毎の統計を受け取る
type TrainingObserver interface {
	ObserveEpoch(stats EpochStats)
}

// ObserverFunc は関数をTrainingObserverとして使うためのアダプタ
type ObserverFunc func(stats EpochStats)

// ObserveEpoch calls f(stats).
func (f ObserverFunc) ObserveEpoch(stats EpochStats) {
	f(stats)
}
