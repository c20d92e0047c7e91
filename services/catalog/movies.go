package catalog

import "almanack/models"

var defaultMovies = []models.Movie{
	{ID: "1", Name: "The Godfather", Year: 1972, Image: "assets/GodFather.jpg"},
	{ID: "2", Name: "Inception", Year: 2010, Image: "assets/Inception.jpg"},
	{ID: "3", Name: "Avengers: Endgame", Year: 2019, Image: "assets/AvengersEndgame.jpeg"},
	{ID: "4", Name: "The Menu", Year: 2022, Image: "assets/TheMenu.jpg"},
	{ID: "5", Name: "Get Out", Year: 2017, Image: "assets/GetOut.png"},
	{ID: "6", Name: "National Treasure", Year: 2004, Image: "assets/NationalTreasure.jpg"},
	{ID: "7", Name: "Gladiator", Year: 2004, Image: "assets/Gladiator.jpg"},
	{ID: "8", Name: "Oppenheimer", Year: 2023, Image: "assets/Oppenheimer.jpg"},
	{ID: "9", Name: "Avatar", Year: 2009, Image: "assets/Avatar.jpg"},
	{ID: "10", Name: "Sherlock", Year: 2010, Image: "assets/Sherlock.jpeg"},
}
