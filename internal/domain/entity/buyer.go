package entity

// Buyer datos del comprador/cliente de una factura.
// Solo Name es obligatorio al crear la factura.
type Buyer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}
