package entity

// Servicio define un producto comercial de la playa. DuracionMinutos es la duración nominal
// de un ciclo de facturación (nil cuando el servicio no tiene duración).
type Servicio struct {
	ID              string
	Nombre          string
	DuracionMinutos *int
}
