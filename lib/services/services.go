// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"reflect"

	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "services")

// Service must be implemented by all services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry is a structure to manage core system services
type ServiceRegistry struct {
	services     map[reflect.Type]Service // map of types to service instances
	serviceTypes []reflect.Type           // all known service types, used to iterate through services
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
	}
}

// RegisterService stores a new service in the map. If a service of that type
// has already been seen it is not stored again.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		logger.Warn("tried to add service type that has already been seen", "type", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll calls Service.Start() for all registered services in registration
// order
func (s *ServiceRegistry) StartAll() {
	logger.Info("starting services", "services", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		logger.Debug("starting service", "service", typ)
		err := s.services[typ].Start()
		if err != nil {
			logger.Error("cannot start service", "service", typ, "error", err)
		}
	}
	logger.Debug("all services started")
}

// StopAll calls Service.Stop() for all registered services in registration
// order
func (s *ServiceRegistry) StopAll() {
	logger.Info("stopping services", "services", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		logger.Debug("stopping service", "service", typ)
		err := s.services[typ].Stop()
		if err != nil {
			logger.Error("error stopping service", "service", typ, "error", err)
		}
	}
	logger.Debug("all services stopped")
}

// Get returns the registered service with the same type as the given value,
// or nil if there is none
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		logger.Warn("expected a pointer", "got", reflect.TypeOf(srvc))
		return nil
	}

	kind := reflect.ValueOf(srvc).Type()
	if service, ok := s.services[kind]; ok {
		return service
	}

	logger.Warn("unknown service type", "type", kind)
	return nil
}
