package prometheus

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	serviceAccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "service_accounts_created",
		Help: "The total number of logging reader service accounts created",
	})
	serviceAccountsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "service_accounts_deleted",
		Help: "The total number of logging reader service accounts deleted",
	})
	roleBindingsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "role_bindings_added",
		Help: "The total number of IAM role bindings added",
	}, []string{"role"})
	roleBindingsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "role_bindings_removed",
		Help: "The total number of IAM role bindings removed",
	}, []string{"role"})
	provisioningErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provisioning_errors",
		Help: "The total number of failed operations, by error kind",
	}, []string{"kind"})
)

func IncrementServiceAccountsCreated(count int) {
	serviceAccountsCreated.Add(float64(count))
}

func IncrementServiceAccountsDeleted(count int) {
	serviceAccountsDeleted.Add(float64(count))
}

func IncrementRoleBindingsAdded(role string, count int) {
	roleBindingsAdded.WithLabelValues(role).Add(float64(count))
}

func IncrementRoleBindingsRemoved(role string, count int) {
	roleBindingsRemoved.WithLabelValues(role).Add(float64(count))
}

func IncrementProvisioningErrors(kind string) {
	provisioningErrors.WithLabelValues(kind).Inc()
}

// Push sends every metric of the default registry to the Pushgateway at url, grouped under job.
func Push(url string, job string) error {
	err := push.New(url, job).Gatherer(prometheus.DefaultGatherer).Push()
	if err != nil {
		return errors.Wrap(err)
	}
	return nil
}
