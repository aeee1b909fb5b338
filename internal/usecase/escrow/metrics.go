package escrow

import "sponsorhub-backend/internal/domain/payment"

// ComputeMetrics aggregates a transaction list. Pure: no persistence,
// no side effects.
func ComputeMetrics(ts []payment.Transaction) Metrics {
	m := Metrics{Count: len(ts)}
	for i := range ts {
		m.TotalAmount += ts[i].Amount
		m.TotalFees += ts[i].PlatformFee
		if ts[i].Status == payment.StatusInEscrow {
			m.InEscrowAmount += ts[i].Amount
		}
	}
	if m.Count > 0 {
		m.MeanAmount = m.TotalAmount / float64(m.Count)
	}
	return m
}
