package menus

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuMongoRepository struct {
	Collection *mongo.Collection
}

func NewMenuMongoRepository(db *mongo.Client, dbName string) contracts.MenuRepository {
	return &MenuMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPanelMenus),
	}
}

func (repo *MenuMongoRepository) FindAll(ctx context.Context) ([]models.PanelMenu, error) {
	var menus []models.PanelMenu
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &menus)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return menus, nil
}
