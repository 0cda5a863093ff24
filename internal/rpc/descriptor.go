package rpc

import (
	"connectrpc.com/connect"
	"github.com/samber/lo"
)

type MethodDescriptor struct {
	Name       string
	StreamType connect.StreamType
}

// ServiceDescriptor describes the remote procedures of one service.
type ServiceDescriptor struct {
	Name    string
	Methods []MethodDescriptor
}

func (s ServiceDescriptor) Method(name string) (MethodDescriptor, bool) {
	return lo.Find(s.Methods, func(m MethodDescriptor) bool {
		return m.Name == name
	})
}

// Procedure returns the URL path of a method, eg /pkg.Service/Method.
func (s ServiceDescriptor) Procedure(method string) string {
	return "/" + s.Name + "/" + method
}

func (s ServiceDescriptor) MethodNames() []string {
	return lo.Map(s.Methods, func(m MethodDescriptor, _ int) string {
		return m.Name
	})
}
