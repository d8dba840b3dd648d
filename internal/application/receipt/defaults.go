package receipt

import (
	"math/rand"
	"strconv"
	"time"
)

// Valores por defecto del recibo recién creado, idénticos a los del
// formulario original.
const (
	defaultPaymentMethod = "Cash [ Indian Rupees ]"

	defaultDisclaimer = `*Price includes all TAX and as Mentioned in USD is just for the reference as per the customer's request.
We DO NOT accept foreign currency as mode of payment. We only can take INR as mode of payment.
*We Take 30 Days Guarantee Post Repair for any mechanical or operational failure occurs due to the repair inadequacy.
We do not cover any broken or spilled damage after the repair.`
)

// Los identificadores generados son códigos de referencia legibles por
// humanos, no claves primarias: derivan del reloj (y de un componente
// aleatorio para la orden de servicio) y una colisión ocasional se tolera.

// newCaseID "SB-STU-" + últimos 6 dígitos de los milisegundos unix.
func newCaseID(now time.Time) string {
	return "SB-STU-" + lastN(strconv.FormatInt(now.UnixMilli(), 10), 6)
}

// newInvoiceRef "KM" + últimos 6 dígitos de los milisegundos unix.
func newInvoiceRef(now time.Time) string {
	return "KM" + lastN(strconv.FormatInt(now.UnixMilli(), 10), 6)
}

// newServiceOrder número aleatorio de cuatro cifras (1000–9999).
func newServiceOrder() string {
	return strconv.Itoa(rand.Intn(9000) + 1000)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
