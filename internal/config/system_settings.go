package config

import (
	"os"
	"strconv"
)

const DATABASE_TYPE = "TRAINFLOW_DATABASE_TYPE"
const DATABASE_URL = "TRAINFLOW_DATABASE_URL"
const DATABASE_SQLLITE_FILE_NAME = "TRAINFLOW_DATABASE_SQLLITE_FILE_NAME"
const SERVER_WEB_PORT = "TRAINFLOW_SERVER_WEB_PORT"
const WEB_SESSION_EXPIRY_HOURS = "TRAINFLOW_WEB_SESSION_EXPIRY_HOURS"
const ADMIN_PASSWORD = "TRAINFLOW_ADMIN_PASSWORD" //initial password for the seeded admin user

const DATABASE_TYPE_POSTGRES = "POSTGRES"
const DATABASE_TYPE_MYSQL = "MYSQL"
const DATABASE_TYPE_SQLLITE = "SQLLITE"

func GetSystemSettingInteger(settingKey string) int {
	val := GetSystemSettingString(settingKey)
	if val != "" {
		intValue, _ := strconv.Atoi(val)
		return intValue
	}
	return 0
}

func GetSystemSettingString(settingKey string) string {
	val := os.Getenv(settingKey)
	if val != "" {
		return val
	}
	if settingKey == SERVER_WEB_PORT {
		return "8080"
	}
	if settingKey == WEB_SESSION_EXPIRY_HOURS {
		return "8"
	}
	if settingKey == DATABASE_SQLLITE_FILE_NAME {
		return "./trainflow.db"
	}
	if settingKey == ADMIN_PASSWORD {
		return "admin"
	}
	return ""
}
