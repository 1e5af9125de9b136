package domain

// Quote расчёт стоимости выбранного периода, отдельно не хранится
type Quote struct {
	Nights     int
	TotalPrice int64
}

// IsEmpty true, если период ещё не рассчитан
func (q Quote) IsEmpty() bool {
	return q.Nights == 0 && q.TotalPrice == 0
}
