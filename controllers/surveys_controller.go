package controllers

import (
	"github.com/google/uuid"

	"github.com/genialityco/events-api/models"
)

var Surveys = Resource[models.Survey]{
	Name:       "survey",
	Collection: models.SurveysCollection,
	Relations:  models.SurveyRelations,
	BeforeCreate: func(s *models.Survey) {
		for i := range s.Questions {
			if s.Questions[i].ID == "" {
				s.Questions[i].ID = uuid.NewString()
			}
		}
	},
}
