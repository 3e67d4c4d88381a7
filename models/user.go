package models

import (
	"scribe/db"
	"scribe/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150)"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.Email = email
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}
