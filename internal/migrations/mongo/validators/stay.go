package validators

import "go.mongodb.org/mongo-driver/bson"

var StayValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"slug",
			"category",
			"pricing_type",
			"min_guests",
			"max_guests",
			"is_active",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"slug": bson.M{
				"bsonType": "string",
				"pattern":  "^[a-z0-9]+(-[a-z0-9]+)*$",
			},

			"category": bson.M{
				"enum": []string{"Cabana", "Cave Room", "Treehouse", "Day Outing"},
			},

			"pricing_type": bson.M{
				"enum": []string{"fixed", "per_person"},
			},

			"base_price_lkr": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"price_fb": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"price_hb": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"price_bb": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"min_guests": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  100,
			},

			"max_guests": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  100,
			},

			"features": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"image_url": bson.M{
				"bsonType": "string",
			},

			"tagline": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"is_active": bson.M{
				"bsonType": "bool",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
