package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

// Правила членства лежат в Mongo одним документом
// Если документа нет, отдаются дефолты
type RulesDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

const rulesID = "membership"

func NewRulesDB() (*RulesDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("LOYALTY_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env LOYALTY_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("loyaltyDB")
	coll := db.Collection("membership_rules")

	return &RulesDB{client, coll}, nil
}

func (r *RulesDB) GetRules(ctx context.Context) (model.MembershipRules, error) {
	var rules model.MembershipRules
	filter := bson.M{"_id": rulesID}
	err := r.coll.FindOne(ctx, filter).Decode(&rules)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.DefaultMembershipRules(), nil
		}
		return model.MembershipRules{}, err
	}
	return rules, nil
}

func (r *RulesDB) SaveRules(ctx context.Context, rules model.MembershipRules) error {
	if rules.SilverMin <= 0 || rules.GoldMin <= rules.SilverMin {
		return fmt.Errorf("tier thresholds must be ordered: %w", model.ErrValidation)
	}
	if rules.BronzeMultiplier < 1 || rules.SilverMultiplier < rules.BronzeMultiplier || rules.GoldMultiplier < rules.SilverMultiplier {
		return fmt.Errorf("tier multipliers must be ordered: %w", model.ErrValidation)
	}

	filter := bson.M{"_id": rulesID}
	update := bson.M{"$set": rules}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}
