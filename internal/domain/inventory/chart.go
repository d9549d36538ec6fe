package inventory

import (
	"time"

	"github.com/tu-usuario/relojes/internal/domain/entity"
)

// ChartPoint son los totales de un día del gráfico: unidades compradas y
// vendidas (sumas de cantidades, no conteo de operaciones).
type ChartPoint struct {
	Day       time.Time
	Label     string // dd/mm
	Purchases int
	Sales     int
}

// ChartData agrega compras y ventas por día para los últimos days días
// terminando en now, del más antiguo al más reciente. Los días sin
// movimientos aparecen con totales en cero, no se omiten. Las entradas de
// tipo REGISTRO no cuentan para el gráfico.
func ChartData(inv *entity.Inventory, days int, now time.Time) []ChartPoint {
	if days <= 0 {
		return nil
	}

	type totals struct{ purchases, sales int }
	byDay := make(map[string]*totals, days)

	out := make([]ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		byDay[key] = &totals{}
		out = append(out, ChartPoint{Day: day, Label: day.Format("02/01")})
	}

	for _, h := range inv.History() {
		t, ok := byDay[h.Timestamp.Format("2006-01-02")]
		if !ok {
			continue
		}
		switch h.Kind {
		case entity.KindPurchase:
			t.purchases += h.Quantity
		case entity.KindSale:
			t.sales += h.Quantity
		}
	}

	for i := range out {
		t := byDay[out[i].Day.Format("2006-01-02")]
		out[i].Purchases = t.purchases
		out[i].Sales = t.sales
	}
	return out
}
