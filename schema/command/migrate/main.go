package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-inc/dispatch-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dispatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS dispatch`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO dispatch").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.AuditEvent{},
	).Error; err != nil {
		panic(err)
	}

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if nil != err {
		return err
	}
	if err := client.Connect(ctx); nil != err {
		return err
	}

	db := client.Database(viper.GetString("mongo.database"))

	fmt.Println("initialize cases collection indexes")
	_, err = db.Collection(schema.CaseCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: map[string]interface{}{"status": 1}},
		{Keys: map[string]interface{}{"hospital_notifications.hospital_id": 1}},
	})
	if err != nil {
		return err
	}

	fmt.Println("initialize telemetry collection indexes")
	_, err = db.Collection(schema.TelemetryCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: map[string]interface{}{"hospital_id": 1}},
	})
	return err
}
