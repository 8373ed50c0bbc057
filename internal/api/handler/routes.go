package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finxpert/advisor-api/internal/api/handler/router"
	"github.com/finxpert/advisor-api/internal/usecases/advising"
	"github.com/finxpert/advisor-api/internal/usecases/campaigning"
	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/internal/usecases/tasking"
	"github.com/finxpert/advisor-api/internal/usecases/transacting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service portfolio.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Clients(portfolioService portfolio.Aggregator, taskService tasking.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:id/portfolio",
			Method:  http.MethodGet,
			Handler: GetClientPortfolio(portfolioService),
		},
		{
			Path:    "/v1/clients/:id/tasks",
			Method:  http.MethodGet,
			Handler: ListClientTasks(taskService),
		},
		{
			Path:    "/v1/clients/:id/tasks",
			Method:  http.MethodPost,
			Handler: CreateClientTask(taskService),
		},
		{
			Path:    "/v1/clients/:id/tasks",
			Method:  http.MethodPatch,
			Handler: UpdateClientTask(taskService),
		},
	}
}

func Campaigns(portfolioService portfolio.Aggregator, dispatchService campaigning.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/templates",
			Method:  http.MethodGet,
			Handler: ListCampaignTemplates(portfolioService),
		},
		{
			Path:    "/v1/campaigns/send",
			Method:  http.MethodPost,
			Handler: SendCampaign(dispatchService),
		},
	}
}

func Compliance(service portfolio.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/compliance/flags",
			Method:  http.MethodGet,
			Handler: ListComplianceFlags(service),
		},
	}
}

func Agent(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/agent/run",
			Method:  http.MethodPost,
			Handler: RunAgent(service),
		},
		{
			Path:    "/v1/chat",
			Method:  http.MethodPost,
			Handler: Chat(service),
		},
	}
}

func Transactions(service transacting.Executor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions/mutual-fund",
			Method:  http.MethodPost,
			Handler: ExecuteMutualFundTransaction(service),
		},
		{
			Path:    "/v1/transactions/loan",
			Method:  http.MethodPost,
			Handler: ExecuteLoanTransaction(service),
		},
	}
}
