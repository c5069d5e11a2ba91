package handler

import (
	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	searchdomain "github.com/playershyan/iSafe-sub001/internal/domain/search"
	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
	"github.com/playershyan/iSafe-sub001/pkg/logger"
)

type Handlers struct {
	Shelters *shelterdomain.Service
	Persons  *persondomain.Service
	Reports  *missingdomain.Service
	Finder   *matchingdomain.Finder
	Recorder *matchingdomain.Recorder
	Search   *searchdomain.Service

	log logger.Logger
}

func New(
	shelters *shelterdomain.Service,
	persons *persondomain.Service,
	reports *missingdomain.Service,
	finder *matchingdomain.Finder,
	recorder *matchingdomain.Recorder,
	search *searchdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Shelters: shelters,
		Persons:  persons,
		Reports:  reports,
		Finder:   finder,
		Recorder: recorder,
		Search:   search,
		log:      log,
	}
}
