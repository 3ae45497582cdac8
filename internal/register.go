package internal

import (
	"github.com/millworks/prodtrack/internal/handler"
	"github.com/millworks/prodtrack/pkg/logutils"
)

// registerManagers builds all the managers.
func registerManagers(conf *handler.RegisterConfig) []handler.Manager {
	var managers []handler.Manager
	for _, register := range handler.Registers {
		manager := register(conf)
		managers = append(managers, manager)
		logutils.Log.Infof("Registered manager: %s", manager.GetName())
	}
	return managers
}
