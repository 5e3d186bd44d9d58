package gcpagent

//go:generate go run go.uber.org/mock/mockgen@v0.2.0 -destination=./mocks/mock_clients.go -package=gcpagentmocks -source=clients.go
