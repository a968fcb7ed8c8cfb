package usecase

import (
	"tecnoseguridad/internal/domain/entity"
)

// serviceCatalog backs the informational services screen. The offering is
// fixed; there is nothing to persist or administer.
var serviceCatalog = []entity.Service{
	{
		ID:          "camaras",
		Title:       "Instalación de cámaras",
		Description: "Instalación y configuración de cámaras de seguridad para hogares y negocios, con acceso remoto desde tu teléfono.",
		Icon:        "videocam",
	},
	{
		ID:          "alarmas",
		Title:       "Alarmas y sensores",
		Description: "Sistemas de alarma con sensores de movimiento y apertura, monitoreo y aviso inmediato ante cualquier evento.",
		Icon:        "notifications",
	},
	{
		ID:          "cercos",
		Title:       "Cercos eléctricos",
		Description: "Instalación de cercos eléctricos perimetrales certificados, con mantenimiento preventivo incluido el primer año.",
		Icon:        "flash",
	},
	{
		ID:          "mantenimiento",
		Title:       "Mantenimiento técnico",
		Description: "Revisión y mantenimiento de equipos de seguridad ya instalados, sin importar dónde los hayas comprado.",
		Icon:        "construct",
	},
}

type ServiceUseCase struct{}

func NewServiceUseCase() *ServiceUseCase {
	return &ServiceUseCase{}
}

func (uc *ServiceUseCase) ListServices() []entity.Service {
	return serviceCatalog
}
